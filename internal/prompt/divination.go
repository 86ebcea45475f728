package prompt

import (
	"fmt"

	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/domain"
	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/ports"
	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/schema"
)

var DivinationSchema = schema.Obj(map[string]*schema.Schema{
	"stickNumber": schema.Int("The stick number, from 1 to 100. Số của quẻ xăm."),
	"name":        schema.Str("Name of the stick, e.g. 'Thượng Cát', 'Trung Bình', 'Hạ Hạ'."),
	"poem":        schema.Str("A four-line poem (thất ngôn tứ tuyệt) explaining the stick."),
	"interpretation": schema.Obj(map[string]*schema.Schema{
		"overview": schema.Str("Overall meaning of the stick."),
		"career":   schema.Str("Career and reputation."),
		"love":     schema.Str("Love and family."),
		"health":   schema.Str("Health."),
	}, "overview", "career", "love", "health"),
	"advice": schema.Str("Closing advice based on the stick."),
}, "stickNumber", "name", "poem", "interpretation", "advice")

const (
	divinationPromptVI = "Người xin xăm đã thành tâm cầu nguyện và rút được quẻ xăm Quan Âm số %d (trong 100 quẻ). Hãy cho biết tên quẻ, bài thơ giải và luận giải chi tiết, sâu sắc cho quẻ này. Trường stickNumber phải là %d."
	divinationPromptEN = "The seeker prayed sincerely and drew Guan Yin oracle stick number %d (of 100). Give the stick's name, its poem and a detailed, profound interpretation of it. The stickNumber field must be %d."

	divinationSystemVI = "Bạn là một bậc thầy về Kinh Dịch và gieo quẻ xăm, với kiến thức uyên thâm về văn hóa và tín ngưỡng Đông phương. Bạn đưa ra những lời giải quẻ sâu sắc, linh ứng, và mang tính hướng thiện. Luôn trả lời bằng tiếng Việt."
	divinationSystemEN = "You are a master of the I Ching and oracle sticks with deep knowledge of Eastern culture and belief. Your readings are profound, resonant and encourage good conduct. Always respond in English."
)

// Divination asks for the interpretation of an already drawn stick.
func Divination(stick int, lang domain.Lang) ports.TextRequest {
	return ports.TextRequest{
		Prompt: fmt.Sprintf(pick(lang, divinationPromptVI, divinationPromptEN), stick, stick),
		System: pick(lang, divinationSystemVI, divinationSystemEN),
		Schema: DivinationSchema,
		Quick:  true,
	}
}
