// Package richtext پاک‌سازی خروجی ادیتور متن غنی را انجام می‌دهد.
package richtext

import "strings"

// EmptyParagraph پاراگراف خالی‌ای که ادیتور در انتهای متن اضافه می‌کند
const EmptyParagraph = "<p>&nbsp;</p>"

// StripEmptyParagraph متن را در اولین پاراگراف خالی قطع می‌کند.
// پاراگراف خالی انتهایی محتوا نیست و نباید ذخیره شود.
func StripEmptyParagraph(s string) string {
	if i := strings.Index(s, EmptyParagraph); i >= 0 {
		return s[:i]
	}
	return s
}

// StripComment مثل StripEmptyParagraph اما فاصله‌های انتهایی را هم حذف می‌کند
func StripComment(s string) string {
	if i := strings.Index(s, EmptyParagraph); i >= 0 {
		return strings.TrimSpace(s[:i])
	}
	return s
}
