package prompt

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/domain"
	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/ports"
	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/schema"
)

// Talisman artwork parameters.
const (
	TalismanAspectRatio = "9:16"
	TalismanMimeType    = domain.MimePNG
)

var ElementProfileSchema = schema.Obj(map[string]*schema.Schema{
	"mainElement":       schema.Str("The person's main Five Element (e.g., 'Wood', 'Mệnh Mộc')."),
	"compatibleColors":  schema.Arr(schema.Str(""), "2-3 colors compatible with the element."),
	"compatibleSymbols": schema.Arr(schema.Str(""), "2-3 symbols or motifs compatible with the element (e.g., 'dragon', 'water patterns')."),
	"zodiacProtector":   schema.Str("The Buddhist protector deity for the person's zodiac sign. Vị Phật bản mệnh theo con giáp."),
	"talismanStyle":     schema.Str("A single creative artistic style, e.g. 'Ancient Seal Script Style', 'Sacred Geometry Mandala'."),
	"keySymbol":         schema.Str("A single primary symbol for the wish (e.g., 'Pixiu for wealth', 'Double Happiness for love')."),
}, "mainElement", "compatibleColors", "compatibleSymbols", "zodiacProtector", "talismanStyle", "keySymbol")

var TalismanTextSchema = schema.Obj(map[string]*schema.Schema{
	"blessingText": schema.Str("A short, powerful blessing (around 20-30 words)."),
	"explanation":  schema.Str("The talisman's symbolism: main element, key symbols, colors and the zodiac protector."),
	"instructions": schema.Str("A short guide on how to use the talisman (e.g., 'Save this, set as lock screen, meditate on your wish...')."),
}, "blessingText", "explanation", "instructions")

// TalismanProfile asks for the element analysis that personalises the artwork.
func TalismanProfile(req domain.TalismanRequest, lang domain.Lang) ports.TextRequest {
	var p string
	if lang == domain.LangEN {
		p = fmt.Sprintf("Based on the birth date %s and the wish for %q, provide a detailed analysis for creating a talisman. Determine the person's main Five Element, compatible colors, compatible symbols, their Zodiac Protector deity, a suitable artistic style for the talisman, and a key symbol for their wish.",
			req.BirthDate, req.Wish)
	} else {
		p = fmt.Sprintf("Dựa vào ngày sinh %s và mong muốn về %q, hãy cung cấp một phân tích chi tiết để tạo bùa hộ mệnh. Xác định Ngũ hành bản mệnh, màu sắc và biểu tượng tương hợp, vị Phật bản mệnh theo con giáp, một phong cách nghệ thuật phù hợp cho lá bùa, và một biểu tượng chủ đạo cho mong ước.",
			req.BirthDate, req.Wish)
	}
	return ports.TextRequest{Prompt: p, Schema: ElementProfileSchema}
}

// TalismanImage builds the artwork prompt. A nil profile yields the generic,
// non-personalised design.
func TalismanImage(req domain.TalismanRequest, profile *domain.ElementProfile, lang domain.Lang) ports.ImageRequest {
	details := ""
	if profile != nil {
		colors := strings.Join(profile.CompatibleColors, ", ")
		symbols := strings.Join(profile.CompatibleSymbols, ", ")
		if lang == domain.LangEN {
			details = fmt.Sprintf("The talisman should be in the '%s' style. The person's destiny is linked to the %s element. Incorporate their auspicious colors: %s. The central theme should be the '%s' to represent their wish, protected by the divine presence of '%s'. Also include other auspicious symbols like %s. ",
				profile.TalismanStyle, profile.MainElement, colors, profile.KeySymbol, profile.ZodiacProtector, symbols)
		} else {
			details = fmt.Sprintf("Lá bùa nên theo phong cách '%s'. Bản mệnh của họ là %s. Tích hợp các màu sắc tương hợp: %s. Chủ đề trung tâm là biểu tượng '%s' để đại diện cho mong ước, được bảo hộ bởi sự hiện diện thiêng liêng của '%s'. Đồng thời bao gồm các biểu tượng may mắn khác như %s. ",
				profile.TalismanStyle, profile.MainElement, colors, profile.KeySymbol, profile.ZodiacProtector, symbols)
		}
	}

	var p string
	if lang == domain.LangEN {
		p = fmt.Sprintf("Create an extremely beautiful, exquisite, and sacred Vietnamese protective talisman (Lá Bùa Hộ Mệnh) with an ethereal glow, in a vertical 9:16 aspect ratio. The design must blend traditional spiritual art with a mystical, modern aesthetic. It is for %s, born on %s, who prays for %q. %sUse rich, harmonious colors and intricate details. The final image must feel powerful, sacred, and filled with positive cosmic energy.",
			req.Name, req.BirthDate, req.Wish, details)
	} else {
		p = fmt.Sprintf("Tạo một lá bùa hộ mệnh Việt Nam cực kỳ đẹp, tinh xảo và linh thiêng, tỏa ra ánh sáng huyền ảo, theo tỷ lệ dọc 9:16. Thiết kế phải kết hợp nghệ thuật tâm linh truyền thống với thẩm mỹ huyền bí, hiện đại. Lá bùa này dành cho %s, sinh ngày %s, cầu nguyện về %q. %sSử dụng màu sắc phong phú, hài hòa và các chi tiết phức tạp. Hình ảnh cuối cùng phải toát lên vẻ quyền năng, thiêng liêng và tràn đầy năng lượng vũ trụ tích cực.",
			req.Name, req.BirthDate, req.Wish, details)
	}
	return ports.ImageRequest{Prompt: p, AspectRatio: TalismanAspectRatio, MimeType: TalismanMimeType}
}

// TalismanText asks for the blessing, symbolism and usage texts. The profile
// is embedded as JSON ("null" when absent).
func TalismanText(req domain.TalismanRequest, profile *domain.ElementProfile, lang domain.Lang) ports.TextRequest {
	b, err := json.Marshal(profile)
	if err != nil {
		b = []byte("null")
	}
	var p string
	if lang == domain.LangEN {
		p = fmt.Sprintf("As the AI sage Thien Giac, provide textual content for a sacred talisman created for someone praying for %q. The talisman's design was inspired by these details: %s. Based on this, provide a short blessing, a detailed explanation of the symbolism, and instructions for use.",
			req.Wish, b)
	} else {
		p = fmt.Sprintf("Với vai trò là AI Thiện Giác, hãy cung cấp nội dung chữ cho lá bùa hộ mệnh được tạo cho người cầu nguyện về %q. Thiết kế của lá bùa được lấy cảm hứng từ các chi tiết sau: %s. Dựa trên thông tin này, hãy cung cấp một lời chúc phúc ngắn gọn, một lời giải thích chi tiết về ý nghĩa biểu tượng, và hướng dẫn sử dụng.",
			req.Wish, b)
	}
	return ports.TextRequest{Prompt: p, Schema: TalismanTextSchema}
}

// GenericBlessing is the simplified prompt used when the artwork is replaced
// by the lotus placeholder.
func GenericBlessing(req domain.TalismanRequest, lang domain.Lang) ports.TextRequest {
	var p string
	if lang == domain.LangEN {
		p = fmt.Sprintf("As the AI sage Thien Giac, write a short general blessing for someone praying for %q. Their talisman is a golden sacred lotus on a deep violet background: explain its symbolism and give brief instructions for use.", req.Wish)
	} else {
		p = fmt.Sprintf("Với vai trò là AI Thiện Giác, hãy viết một lời chúc phúc ngắn gọn cho người cầu nguyện về %q. Lá bùa của họ là một đóa sen thiêng màu vàng kim trên nền tím thẫm: hãy giải thích ý nghĩa biểu tượng và hướng dẫn sử dụng ngắn gọn.", req.Wish)
	}
	return ports.TextRequest{Prompt: p, Schema: TalismanTextSchema, Quick: true}
}
