package prompt

import (
	"fmt"

	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/domain"
	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/ports"
	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/schema"
)

var auspiciousDateSchema = schema.Obj(map[string]*schema.Schema{
	"gregorianDate":      schema.Str("The auspicious Gregorian date in YYYY-MM-DD format."),
	"lunarDate":          schema.Str("The corresponding Lunar date (e.g., 'Ngày 24 tháng 9 năm Giáp Thìn')."),
	"dayOfWeek":          schema.Str("The day of the week, in the requested language."),
	"goodHours":          schema.Str("Auspicious hours (Giờ Hoàng Đạo) during that day."),
	"explanation":        schema.Str("Why this day suits the event, mentioning good stars and favorable elements."),
	"conflictingZodiacs": schema.Arr(schema.Str(""), "Zodiac signs that conflict with this day."),
	"suitabilityScore":   schema.Num("How well the day suits the event, from 0 to 100."),
	"auspiciousStars":    schema.Arr(schema.Str(""), "Good stars (cát tinh) ruling the day."),
	"inauspiciousStars":  schema.Arr(schema.Str(""), "Bad stars (hung tinh) ruling the day."),
}, "gregorianDate", "lunarDate", "dayOfWeek", "goodHours", "explanation", "conflictingZodiacs",
	"suitabilityScore", "auspiciousStars", "inauspiciousStars")

var DateSelectionSchema = schema.Obj(map[string]*schema.Schema{
	"auspiciousDates": schema.Arr(auspiciousDateSchema,
		"Up to 5 of the most auspicious dates found. Empty if no good dates are found."),
}, "auspiciousDates")

const (
	datesPromptEN = `Please act as an expert in Eastern date selection. Find the most auspicious dates in %d/%d for the event: "%s".
The person's date of birth is %s. It is crucial to select dates that DO NOT conflict with their zodiac sign.
Provide a list of the best dates, including the Gregorian date, Lunar date, day of the week, auspicious hours, a detailed explanation, the conflicting zodiac signs, a suitability score and the good and bad stars of each day.`
	datesPromptVI = `Hãy đóng vai một chuyên gia chọn ngày lành tháng tốt. Tìm những ngày tốt nhất trong tháng %d năm %d cho công việc: "%s".
Thân chủ sinh ngày %s. Điều cực kỳ quan trọng là phải chọn những ngày KHÔNG xung khắc với tuổi của thân chủ.
Cung cấp một danh sách những ngày tốt nhất, bao gồm ngày dương lịch, ngày âm lịch, thứ trong tuần, giờ hoàng đạo, luận giải chi tiết, các tuổi xung khắc, độ hợp và các sao tốt xấu của từng ngày.`

	datesSystemEN = "You are a master of Feng Shui and Eastern date selection (Trạch Cát). Your analysis is based on the I Ching, celestial stems, terrestrial branches and the influence of good and bad stars. Provide accurate, clear and responsible advice. Always respond in English."
	datesSystemVI = "Bạn là một bậc thầy về Phong Thủy và Trạch Cát. Phân tích của bạn dựa trên nguyên lý Kinh Dịch, Thiên Can, Địa Chi, và ảnh hưởng của các sao tốt-xấu. Cung cấp lời khuyên chính xác, rõ ràng, và có trách nhiệm. Luôn trả lời bằng tiếng Việt."
)

// DateSelection builds the auspicious-date finder request.
func DateSelection(data domain.DateSelectionData, lang domain.Lang) ports.TextRequest {
	var p string
	if lang == domain.LangEN {
		p = fmt.Sprintf(datesPromptEN, data.TargetMonth, data.TargetYear, data.EventType, data.BirthDate)
	} else {
		p = fmt.Sprintf(datesPromptVI, data.TargetMonth, data.TargetYear, data.EventType, data.BirthDate)
	}
	return ports.TextRequest{
		Prompt:      p,
		System:      pick(lang, datesSystemVI, datesSystemEN),
		Schema:      DateSelectionSchema,
		Temperature: temperature(datesTemperature),
		Quick:       true,
	}
}
