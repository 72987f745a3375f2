package formatter

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
	"github.com/shopspring/decimal"
)

// FormatPhone formats a phone number to E164 format
func FormatPhone(phone, countryCode string) (string, error) {
	countryCode = strings.ToUpper(countryCode)
	num, err := phonenumbers.Parse(phone, countryCode)
	if err != nil {
		return "", err
	}
	formattedNum := phonenumbers.Format(num, phonenumbers.E164)
	return formattedNum, nil
}

// DisplayPhone renders a number in international format, falling back to the raw input
// when it cannot be parsed or is not a valid number for the region.
func DisplayPhone(phone, countryCode string) string {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ""
	}
	num, err := phonenumbers.Parse(phone, strings.ToUpper(countryCode))
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return phone
	}
	return phonenumbers.Format(num, phonenumbers.INTERNATIONAL)
}

// FormatPLN renders an amount the way pl-PL locales print złoty, e.g. "1 234,56 zł".
func FormatPLN(amount decimal.Decimal) string {
	return GroupThousands(amount.StringFixed(2), " ", ",") + " zł"
}

// GroupThousands rewrites a plain "1234.56" number string using the given separators.
func GroupThousands(number, thousandSep, decimalSep string) string {
	sign := ""
	if strings.HasPrefix(number, "-") {
		sign, number = "-", number[1:]
	}

	intPart, fracPart, hasFrac := strings.Cut(number, ".")

	var b strings.Builder
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteString(thousandSep)
		}
		b.WriteRune(d)
	}

	out := sign + b.String()
	if hasFrac {
		out += decimalSep + fracPart
	}
	return out
}
