package prompt

import (
	"fmt"

	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/domain"
	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/ports"
	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/schema"
)

// HoroscopeSchema is the shape of domain.AnalysisResult.
var HoroscopeSchema = schema.Obj(map[string]*schema.Schema{
	"chartSummary": schema.Obj(map[string]*schema.Schema{
		"mainElement":   schema.Str("The person's main five element (e.g., 'Wood Element'). Ngũ hành bản mệnh (ví dụ: 'Mệnh Mộc')."),
		"zodiacAnimal":  schema.Str("The person's zodiac animal (e.g., 'Year of the Rat'). Con giáp (ví dụ: 'Tuổi Tý')."),
		"westernZodiac": schema.Str("The person's Western zodiac sign (e.g., 'Aries'). Cung hoàng đạo (ví dụ: 'Cung Bạch Dương')."),
		"destinyPalace": schema.Str("The Destiny Palace in the chart (e.g., 'Destiny Palace in Rat'). Cung Mệnh (ví dụ: 'Cung Mệnh tại Tý')."),
	}, "mainElement", "zodiacAnimal", "westernZodiac", "destinyPalace"),
	"lifetimeAnalysis": schema.Obj(map[string]*schema.Schema{
		"overview":        schema.Str("Detailed overview of life, personality, strengths and weaknesses, based on the Day Master and key elements. Narrative, flowing style."),
		"career":          schema.Str("In-depth analysis of career path, suitable professions, potential for success and notable periods of change. Actionable advice."),
		"wealth":          schema.Str("Analysis of wealth, asset accumulation potential, financial mindset and prosperous periods. Strategic advice."),
		"loveAndMarriage": schema.Str("Analysis of love life, romance, ideal partner characteristics and marital harmony. Compassionate guidance."),
		"health":          schema.Str("Potential health issues related to the five elements in the chart and advice for well-being."),
		"family":          schema.Str("Relationships with family, parents and siblings, and their influence."),
		"synthesis":       schema.Str("A holistic summary of how career, wealth and relationships influence each other. This ties everything together."),
		"keyPeriods": schema.Obj(map[string]*schema.Schema{
			"youth":     schema.Str("The Youth Period (approx. 18-35): education, early career and relationships."),
			"middleAge": schema.Str("Middle Age (approx. 36-55): peak career, family building and wealth accumulation."),
			"oldAge":    schema.Str("Old Age (approx. 56 onwards): health, legacy and spiritual life."),
		}, "youth", "middleAge", "oldAge"),
	}, "overview", "career", "wealth", "loveAndMarriage", "health", "family", "synthesis", "keyPeriods"),
	"luckyAdvice": schema.Obj(map[string]*schema.Schema{
		"luckyNumbers":      schema.Arr(schema.Num(""), "Lucky numbers."),
		"luckyColors":       schema.Arr(schema.Str(""), "Colors that are compatible with the person's element."),
		"compatibleZodiacs": schema.Arr(schema.Str(""), "Compatible zodiac animals."),
		"thingsToDo":        schema.Str("Actionable advice on things to do to enhance luck, written as bullet points."),
		"thingsToAvoid":     schema.Str("Actionable advice on things to avoid to minimize risks, written as bullet points."),
	}, "luckyNumbers", "luckyColors", "compatibleZodiacs", "thingsToDo", "thingsToAvoid"),
}, "chartSummary", "lifetimeAnalysis", "luckyAdvice")

const (
	horoscopePromptEN = `As a top-tier Eastern astrology master, provide an exceptionally detailed, professional, and holistic lifetime horoscope analysis for:
- Date of Birth: %s
- Time of Birth: %s
- Gender: %s

Your analysis must be comprehensive, deeply rooted in authentic astrological principles, and presented in an eloquent, narrative style. Avoid generic statements.
1.  **Core Analysis:** Analyze the Four Pillars (Bazi) to determine their core destiny.
2.  **Lifetime Breakdown:** Provide in-depth, flowing analysis for each life aspect.
3.  **Life Stages:** Detail the key themes and opportunities for their Youth (18-35), Middle Age (36-55), and Old Age (56+).
4.  **Synthesis:** Explain the interplay between their career, wealth, and relationships. How do these areas support or challenge one another? This section is paramount.
5.  **Guidance:** Conclude with practical, auspicious advice formatted clearly.`

	horoscopePromptVI = `Với vai trò là một bậc thầy tử vi Đông phương hàng đầu, hãy luận giải lá số tử vi trọn đời một cách cực kỳ chi tiết, chuyên nghiệp và toàn diện cho thân chủ:
- Ngày sinh: %s
- Giờ sinh: %s
- Giới tính: %s

Bài phân tích phải có chiều sâu, dựa trên các nguyên tắc học thuật chính thống, và được trình bày bằng văn phong lưu loát, giàu tính tự sự. Tránh các nhận định chung chung.
1.  **Phân Tích Cốt Lõi:** Phân tích Tứ Trụ để xác định vận mệnh cốt lõi.
2.  **Luận Giải Trọn Đời:** Cung cấp phân tích sâu sắc, liền mạch cho từng phương diện cuộc sống.
3.  **Các Giai Đoạn Vận Hạn:** Luận giải chi tiết các chủ đề và cơ hội chính trong các giai đoạn Tiền Vận (18-35), Trung Vận (36-55), và Hậu Vận (từ 56 tuổi).
4.  **Tổng Luận Liên Kết:** Giải thích sự tương tác giữa sự nghiệp, tài lộc và tình duyên. Các phương diện này hỗ trợ hay cản trở nhau ra sao? Đây là phần quan trọng nhất.
5.  **Lời Khuyên Hữu Ích:** Kết thúc bằng những lời khuyên thực tế, cát tường được định dạng rõ ràng.`

	horoscopeSystemEN = "You are a world-class Eastern astrology expert named 'Thien Giac'. Your analysis is insightful, accurate, based on ancient knowledge but presented in a modern, eloquent and constructive narrative. Always respond in English."
	horoscopeSystemVI = "Bạn là một chuyên gia tử vi Đông phương đẳng cấp thế giới với pháp danh 'Thiện Giác'. Phân tích của bạn sâu sắc, chính xác, dựa trên kiến thức cổ học nhưng được trình bày theo lối kể chuyện hiện đại, lưu loát và đầy tính xây dựng. Luôn trả lời bằng tiếng Việt."
)

// Horoscope builds the lifetime reading request.
func Horoscope(data domain.BirthData, lang domain.Lang) ports.TextRequest {
	gender := pick(lang, "Nữ", "Female")
	if data.Gender == domain.Male {
		gender = pick(lang, "Nam", "Male")
	}
	return ports.TextRequest{
		Prompt:      fmt.Sprintf(pick(lang, horoscopePromptVI, horoscopePromptEN), data.Date, data.Time, gender),
		System:      pick(lang, horoscopeSystemVI, horoscopeSystemEN),
		Schema:      HoroscopeSchema,
		Temperature: temperature(horoscopeTemperature),
	}
}
