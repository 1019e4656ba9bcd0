package patterns

import "github.com/veildoc/veildoc/internal/types"

var moneyPatterns = []Pattern{
	// Americas
	{`\$\s?\d{1,3}(?:,\d{3})*(?:\.\d{2})?`, types.Money, 90, "currency_usd"},
	{`R\$\s?\d{1,3}(?:\.\d{3})*(?:,\d{2})?`, types.Money, 90, "currency_brl"},
	{`MX\$\s?\d{1,3}(?:,\d{3})*(?:\.\d{2})?`, types.Money, 90, "currency_mxn"},

	// Europe
	{`€\s?\d{1,3}(?:[.,]\d{3})*(?:[.,]\d{2})?`, types.Money, 90, "currency_eur"},
	{`£\s?\d{1,3}(?:,\d{3})*(?:\.\d{2})?`, types.Money, 90, "currency_gbp"},
	{`CHF\s?\d{1,3}(?:[',]\d{3})*(?:\.\d{2})?`, types.Money, 90, "currency_chf"},

	// Asia
	{`¥\s?\d{1,3}(?:,\d{3})*`, types.Money, 90, "currency_cny_jpy"},
	{`₩\s?\d{1,3}(?:,\d{3})*`, types.Money, 90, "currency_krw"},
	{`₹\s?\d{1,3}(?:,\d{2})*(?:,\d{3})?`, types.Money, 90, "currency_inr"},
	{`S\$\s?\d{1,3}(?:,\d{3})*(?:\.\d{2})?`, types.Money, 90, "currency_sgd"},
	{`HK\$\s?\d{1,3}(?:,\d{3})*(?:\.\d{2})?`, types.Money, 90, "currency_hkd"},
	{`NT\$\s?\d{1,3}(?:,\d{3})*`, types.Money, 90, "currency_twd"},
	{`฿\s?\d{1,3}(?:,\d{3})*(?:\.\d{2})?`, types.Money, 90, "currency_thb"},
	{`₫\s?\d{1,3}(?:\.\d{3})*`, types.Money, 90, "currency_vnd"},
	{`₱\s?\d{1,3}(?:,\d{3})*(?:\.\d{2})?`, types.Money, 90, "currency_php"},
	{`Rp\s?\d{1,3}(?:\.\d{3})*`, types.Money, 90, "currency_idr"},
	{`RM\s?\d{1,3}(?:,\d{3})*(?:\.\d{2})?`, types.Money, 90, "currency_myr"},

	// Middle East
	{`(?:AED|د\.إ)\s?\d{1,3}(?:,\d{3})*(?:\.\d{2})?`, types.Money, 90, "currency_aed"},
	{`(?:SAR|ر\.س)\s?\d{1,3}(?:,\d{3})*(?:\.\d{2})?`, types.Money, 90, "currency_sar"},
	{`₪\s?\d{1,3}(?:,\d{3})*(?:\.\d{2})?`, types.Money, 90, "currency_ils"},

	// Africa
	{`R\s?\d{1,3}(?:\s?\d{3})*(?:,\d{2})?`, types.Money, 85, "currency_zar"},
	{`₦\s?\d{1,3}(?:,\d{3})*(?:\.\d{2})?`, types.Money, 90, "currency_ngn"},
	{`KSh\s?\d{1,3}(?:,\d{3})*(?:\.\d{2})?`, types.Money, 90, "currency_kes"},
	{`E£\s?\d{1,3}(?:,\d{3})*(?:\.\d{2})?`, types.Money, 90, "currency_egp"},

	// Oceania
	{`A\$\s?\d{1,3}(?:,\d{3})*(?:\.\d{2})?`, types.Money, 90, "currency_aud"},
	{`NZ\$\s?\d{1,3}(?:,\d{3})*(?:\.\d{2})?`, types.Money, 90, "currency_nzd"},

	// Russia & CIS
	{`₽\s?\d{1,3}(?:\s?\d{3})*(?:[.,]\d{2})?`, types.Money, 90, "currency_rub"},
	{`₴\s?\d{1,3}(?:\s?\d{3})*(?:[.,]\d{2})?`, types.Money, 90, "currency_uah"},

	// Turkey
	{`₺\s?\d{1,3}(?:[.,]\d{3})*(?:[.,]\d{2})?`, types.Money, 90, "currency_try"},

	// South America
	{`ARS?\$\s?\d{1,3}(?:[.,]\d{3})*(?:[.,]\d{2})?`, types.Money, 90, "currency_ars"},
	{`CLP?\$\s?\d{1,3}(?:[.,]\d{3})*`, types.Money, 90, "currency_clp"},
	{`COL?\$\s?\d{1,3}(?:[.,]\d{3})*`, types.Money, 90, "currency_cop"},
	{`S/\.?\s?\d{1,3}(?:[.,]\d{3})*(?:[.,]\d{2})?`, types.Money, 90, "currency_pen"},

	// South Asia
	{`Rs\.?\s?\d{1,3}(?:,\d{2})*(?:,\d{3})?`, types.Money, 85, "currency_pkr"},
	{`৳\s?\d{1,3}(?:,\d{2})*(?:,\d{3})?`, types.Money, 90, "currency_bdt"},

	// Nordics
	{`(?:SEK|kr)\s?\d{1,3}(?:\s?\d{3})*(?:[.,]\d{2})?`, types.Money, 90, "currency_sek"},
	{`(?:NOK|kr)\s?\d{1,3}(?:\s?\d{3})*(?:[.,]\d{2})?`, types.Money, 90, "currency_nok"},
	{`(?:DKK|kr\.?)\s?\d{1,3}(?:[.,]\d{3})*(?:[.,]\d{2})?`, types.Money, 90, "currency_dkk"},

	// Other EU
	{`(?:PLN|zł)\s?\d{1,3}(?:\s?\d{3})*(?:[.,]\d{2})?`, types.Money, 90, "currency_pln"},
	{`(?:CZK|Kč)\s?\d{1,3}(?:\s?\d{3})*(?:[.,]\d{2})?`, types.Money, 90, "currency_czk"},
	{`(?:HUF|Ft)\s?\d{1,3}(?:\s?\d{3})*`, types.Money, 90, "currency_huf"},
	{`(?:RON|lei)\s?\d{1,3}(?:[.,]\d{3})*(?:[.,]\d{2})?`, types.Money, 90, "currency_ron"},
	{`(?:BGN|лв\.?)\s?\d{1,3}(?:\s?\d{3})*(?:[.,]\d{2})?`, types.Money, 90, "currency_bgn"},

	// North Africa
	{`(?:MAD|DH)\s?\d{1,3}(?:[.,]\d{3})*(?:[.,]\d{2})?`, types.Money, 90, "currency_mad"},
	{`(?:DZD|DA)\s?\d{1,3}(?:[.,]\d{3})*(?:[.,]\d{2})?`, types.Money, 90, "currency_dzd"},

	// Amount followed by an ISO currency code
	{`\b\d{1,3}(?:[.,]\d{3})*(?:[.,]\d{2})?\s?(?:USD|EUR|GBP|CHF|JPY|CNY|KRW|INR|SGD|HKD|TWD|THB|VND|PHP|IDR|MYR|AED|SAR|ILS|ZAR|NGN|KES|EGP|AUD|NZD|BRL|MXN|CAD|RUB|UAH|TRY|ARS|CLP|COP|PEN|PKR|BDT|SEK|NOK|DKK|PLN|CZK|HUF|RON|BGN|HRK|MAD|DZD)\b`, types.Money, 90, "currency_coded"},
}
