package currency

import "ratebank/internal/domain"

// isoCurrencies lists active ISO 4217 currencies with the number of minor units per
// major unit.
var isoCurrencies = []domain.Currency{
	{Code: "AED", SubunitToUnit: 100},
	{Code: "AFN", SubunitToUnit: 100},
	{Code: "ALL", SubunitToUnit: 100},
	{Code: "AMD", SubunitToUnit: 100},
	{Code: "ANG", SubunitToUnit: 100},
	{Code: "AOA", SubunitToUnit: 100},
	{Code: "ARS", SubunitToUnit: 100},
	{Code: "AUD", SubunitToUnit: 100},
	{Code: "AWG", SubunitToUnit: 100},
	{Code: "AZN", SubunitToUnit: 100},
	{Code: "BAM", SubunitToUnit: 100},
	{Code: "BBD", SubunitToUnit: 100},
	{Code: "BDT", SubunitToUnit: 100},
	{Code: "BGN", SubunitToUnit: 100},
	{Code: "BHD", SubunitToUnit: 1000},
	{Code: "BIF", SubunitToUnit: 1},
	{Code: "BMD", SubunitToUnit: 100},
	{Code: "BND", SubunitToUnit: 100},
	{Code: "BOB", SubunitToUnit: 100},
	{Code: "BRL", SubunitToUnit: 100},
	{Code: "BSD", SubunitToUnit: 100},
	{Code: "BTN", SubunitToUnit: 100},
	{Code: "BWP", SubunitToUnit: 100},
	{Code: "BYN", SubunitToUnit: 100},
	{Code: "BZD", SubunitToUnit: 100},
	{Code: "CAD", SubunitToUnit: 100},
	{Code: "CDF", SubunitToUnit: 100},
	{Code: "CHF", SubunitToUnit: 100},
	{Code: "CLP", SubunitToUnit: 1},
	{Code: "CNY", SubunitToUnit: 100},
	{Code: "COP", SubunitToUnit: 100},
	{Code: "CRC", SubunitToUnit: 100},
	{Code: "CUP", SubunitToUnit: 100},
	{Code: "CVE", SubunitToUnit: 100},
	{Code: "CZK", SubunitToUnit: 100},
	{Code: "DJF", SubunitToUnit: 1},
	{Code: "DKK", SubunitToUnit: 100},
	{Code: "DOP", SubunitToUnit: 100},
	{Code: "DZD", SubunitToUnit: 100},
	{Code: "EGP", SubunitToUnit: 100},
	{Code: "ERN", SubunitToUnit: 100},
	{Code: "ETB", SubunitToUnit: 100},
	{Code: "EUR", SubunitToUnit: 100},
	{Code: "FJD", SubunitToUnit: 100},
	{Code: "FKP", SubunitToUnit: 100},
	{Code: "GBP", SubunitToUnit: 100},
	{Code: "GEL", SubunitToUnit: 100},
	{Code: "GHS", SubunitToUnit: 100},
	{Code: "GIP", SubunitToUnit: 100},
	{Code: "GMD", SubunitToUnit: 100},
	{Code: "GNF", SubunitToUnit: 1},
	{Code: "GTQ", SubunitToUnit: 100},
	{Code: "GYD", SubunitToUnit: 100},
	{Code: "HKD", SubunitToUnit: 100},
	{Code: "HNL", SubunitToUnit: 100},
	{Code: "HTG", SubunitToUnit: 100},
	{Code: "HUF", SubunitToUnit: 100},
	{Code: "IDR", SubunitToUnit: 100},
	{Code: "ILS", SubunitToUnit: 100},
	{Code: "INR", SubunitToUnit: 100},
	{Code: "IQD", SubunitToUnit: 1000},
	{Code: "IRR", SubunitToUnit: 100},
	{Code: "ISK", SubunitToUnit: 1},
	{Code: "JMD", SubunitToUnit: 100},
	{Code: "JOD", SubunitToUnit: 1000},
	{Code: "JPY", SubunitToUnit: 1},
	{Code: "KES", SubunitToUnit: 100},
	{Code: "KGS", SubunitToUnit: 100},
	{Code: "KHR", SubunitToUnit: 100},
	{Code: "KMF", SubunitToUnit: 1},
	{Code: "KRW", SubunitToUnit: 1},
	{Code: "KWD", SubunitToUnit: 1000},
	{Code: "KYD", SubunitToUnit: 100},
	{Code: "KZT", SubunitToUnit: 100},
	{Code: "LAK", SubunitToUnit: 100},
	{Code: "LBP", SubunitToUnit: 100},
	{Code: "LKR", SubunitToUnit: 100},
	{Code: "LRD", SubunitToUnit: 100},
	{Code: "LSL", SubunitToUnit: 100},
	{Code: "LYD", SubunitToUnit: 1000},
	{Code: "MAD", SubunitToUnit: 100},
	{Code: "MDL", SubunitToUnit: 100},
	{Code: "MGA", SubunitToUnit: 5},
	{Code: "MKD", SubunitToUnit: 100},
	{Code: "MMK", SubunitToUnit: 100},
	{Code: "MNT", SubunitToUnit: 100},
	{Code: "MOP", SubunitToUnit: 100},
	{Code: "MRU", SubunitToUnit: 5},
	{Code: "MUR", SubunitToUnit: 100},
	{Code: "MVR", SubunitToUnit: 100},
	{Code: "MWK", SubunitToUnit: 100},
	{Code: "MXN", SubunitToUnit: 100},
	{Code: "MYR", SubunitToUnit: 100},
	{Code: "MZN", SubunitToUnit: 100},
	{Code: "NAD", SubunitToUnit: 100},
	{Code: "NGN", SubunitToUnit: 100},
	{Code: "NIO", SubunitToUnit: 100},
	{Code: "NOK", SubunitToUnit: 100},
	{Code: "NPR", SubunitToUnit: 100},
	{Code: "NZD", SubunitToUnit: 100},
	{Code: "OMR", SubunitToUnit: 1000},
	{Code: "PAB", SubunitToUnit: 100},
	{Code: "PEN", SubunitToUnit: 100},
	{Code: "PGK", SubunitToUnit: 100},
	{Code: "PHP", SubunitToUnit: 100},
	{Code: "PKR", SubunitToUnit: 100},
	{Code: "PLN", SubunitToUnit: 100},
	{Code: "PYG", SubunitToUnit: 1},
	{Code: "QAR", SubunitToUnit: 100},
	{Code: "RON", SubunitToUnit: 100},
	{Code: "RSD", SubunitToUnit: 100},
	{Code: "RUB", SubunitToUnit: 100},
	{Code: "RWF", SubunitToUnit: 1},
	{Code: "SAR", SubunitToUnit: 100},
	{Code: "SBD", SubunitToUnit: 100},
	{Code: "SCR", SubunitToUnit: 100},
	{Code: "SDG", SubunitToUnit: 100},
	{Code: "SEK", SubunitToUnit: 100},
	{Code: "SGD", SubunitToUnit: 100},
	{Code: "SHP", SubunitToUnit: 100},
	{Code: "SLE", SubunitToUnit: 100},
	{Code: "SOS", SubunitToUnit: 100},
	{Code: "SRD", SubunitToUnit: 100},
	{Code: "SSP", SubunitToUnit: 100},
	{Code: "STN", SubunitToUnit: 100},
	{Code: "SYP", SubunitToUnit: 100},
	{Code: "SZL", SubunitToUnit: 100},
	{Code: "THB", SubunitToUnit: 100},
	{Code: "TJS", SubunitToUnit: 100},
	{Code: "TMT", SubunitToUnit: 100},
	{Code: "TND", SubunitToUnit: 1000},
	{Code: "TOP", SubunitToUnit: 100},
	{Code: "TRY", SubunitToUnit: 100},
	{Code: "TTD", SubunitToUnit: 100},
	{Code: "TWD", SubunitToUnit: 100},
	{Code: "TZS", SubunitToUnit: 100},
	{Code: "UAH", SubunitToUnit: 100},
	{Code: "UGX", SubunitToUnit: 1},
	{Code: "USD", SubunitToUnit: 100},
	{Code: "UYU", SubunitToUnit: 100},
	{Code: "UZS", SubunitToUnit: 100},
	{Code: "VES", SubunitToUnit: 100},
	{Code: "VND", SubunitToUnit: 1},
	{Code: "VUV", SubunitToUnit: 1},
	{Code: "WST", SubunitToUnit: 100},
	{Code: "XAF", SubunitToUnit: 1},
	{Code: "XCD", SubunitToUnit: 100},
	{Code: "XOF", SubunitToUnit: 1},
	{Code: "XPF", SubunitToUnit: 1},
	{Code: "YER", SubunitToUnit: 100},
	{Code: "ZAR", SubunitToUnit: 100},
	{Code: "ZMW", SubunitToUnit: 100},
	{Code: "ZWL", SubunitToUnit: 100},
}
