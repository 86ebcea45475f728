package i18n

import "github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/domain"

var vi = Messages{
	AppTitle: "Huyền Phong Phật Đạo",
	Errors: Errors{
		Config:           "Lỗi cấu hình máy chủ: Thiếu API_KEY.",
		Connect:          "Không thể kết nối tới máy chủ. Vui lòng kiểm tra kết nối mạng.",
		Generic:          "Xin lỗi, đã có lỗi xảy ra. Vui lòng thử lại.",
		Unknown:          "Đã xảy ra lỗi không xác định. Vui lòng thử lại sau.",
		InvalidInput:     "Thông tin gửi lên chưa đầy đủ hoặc không hợp lệ. Vui lòng kiểm tra lại.",
		RateLimited:      "Bạn gửi yêu cầu quá nhanh. Vui lòng chờ giây lát rồi thử lại.",
		MethodNotAllowed: "Phương thức không được hỗ trợ",
		Server:           "Lỗi máy chủ",
		Horoscope:        "Đã xảy ra lỗi khi luận giải lá số. Vui lòng thử lại sau.",
		Divination:       "Đã xảy ra lỗi khi gieo quẻ. Vui lòng thử lại sau.",
		DateSelection:    "Đã xảy ra lỗi khi tìm ngày tốt. Vui lòng thử lại sau.",
		Talisman:         "Đã xảy ra lỗi không mong muốn khi trì chú bùa. Có thể các vị thần linh đang nghỉ ngơi. Vui lòng thử lại sau.",
		ImageFailed:      "Tạo ảnh thất bại.",
		NameRequired:     "Vui lòng nhập họ và tên của bạn.",
		Busy:             "Vui lòng chờ yêu cầu hiện tại hoàn tất.",
	},
	Chat: Chat{
		Greeting:    "A Di Đà Phật! Bần đạo là Thiện Giác. Thí chủ có điều gì cần luận giải về mệnh lý, phong thủy, hay triết lý nhân sinh không?",
		Placeholder: "Hỏi về mệnh lý, hướng nhà, ngày giờ tốt...",
		Error:       "Xin lỗi, đã có lỗi xảy ra. Vui lòng thử lại.",
		Thinking:    "...",
	},
	Horoscope: Horoscope{
		Title:         "Lá Số Tử Vi Trọn Đời",
		UserInfo:      "Thông Tin Thân Chủ",
		DateLabel:     "Ngày Sinh",
		TimeLabel:     "Giờ Sinh",
		GenderLabel:   "Giới Tính",
		Male:          "Nam",
		Female:        "Nữ",
		SummaryTitle:  "Bản Mệnh Tổng Quan",
		MainElement:   "Bản Mệnh",
		ZodiacAnimal:  "Con Giáp",
		WesternZodiac: "Hoàng Đạo",
		DestinyPalace: "Cung Mệnh",
		LifetimeTitle: "Luận Giải Trọn Đời",
		Overview:      "Tổng Quan",
		Career:        "Sự Nghiệp",
		Wealth:        "Tài Lộc",
		Love:          "Tình Duyên",
		Health:        "Sức Khỏe",
		Family:        "Gia Đạo",
		Synthesis:     "Tổng Luận & Liên Kết",
		PeriodsTitle:  "Các Giai Đoạn Vận Hạn Chính",
		Youth:         "Giai Đoạn Tiền Vận (18-35 tuổi)",
		MiddleAge:     "Giai Đoạn Trung Vận (36-55 tuổi)",
		OldAge:        "Giai Đoạn Hậu Vận (từ 56 tuổi)",
		LuckyTitle:    "Cẩm Nang Cát Tường",
		Numbers:       "Số May Mắn",
		Colors:        "Màu Hợp Mệnh",
		Zodiacs:       "Tuổi Hợp",
		Dos:           "Việc Nên Làm",
		Donts:         "Việc Cần Tránh",
		Footer:        "Luận giải bởi Huyền Phong Phật Đạo © %d. Nội dung chỉ mang tính chất tham khảo và chiêm nghiệm.",
		Loading:       "AI Thiện Giác đang luận giải lá số của bạn. Xin vui lòng chờ trong giây lát...",
	},
	Divination: Divination{
		StickNumber:    "Quẻ Xăm Số",
		Poem:           "Thơ Giải",
		Interpretation: "Luận Giải Chi Tiết",
		Overview:       "Tổng Quan",
		Career:         "Công Danh",
		Love:           "Tình Duyên & Gia Đạo",
		Health:         "Sức Khỏe",
		Advice:         "Lời Khuyên Của Thiện Giác",
		Loading:        "Đang Gieo Quẻ...",
	},
	Dates: Dates{
		Title:        "Danh Sách Ngày Cát Tường",
		NoResults:    "Không tìm thấy ngày nào thực sự tốt cho sự việc này trong tháng đã chọn. Vui lòng thử tìm ở tháng khác.",
		LunarDate:    "Ngày Âm Lịch",
		GoodHours:    "Giờ Hoàng Đạo",
		Explanation:  "Luận Giải",
		Conflicting:  "Tuổi Kỵ",
		Auspicious:   "Cát Tinh",
		Inauspicious: "Hung Tinh",
		Score:        "Độ Hợp",
		Loading:      "AI Thiện Giác đang tính toán thiên can, địa chi và các sao tốt để tìm ngày lành cho bạn...",
		EventTypes: []Preset{
			{Key: "wedding", Label: "Cưới Hỏi"},
			{Key: "groundbreaking", Label: "Động Thổ Xây Dựng"},
			{Key: "grandOpening", Label: "Khai Trương"},
			{Key: "movingHouse", Label: "Nhập Trạch (Về Nhà Mới)"},
			{Key: "contractSigning", Label: "Ký Kết Hợp Đồng"},
			{Key: "travel", Label: "Xuất Hành"},
		},
	},
	Talisman: Talisman{
		Title:        "Lá Bùa Hộ Mệnh Của Bạn",
		Symbolism:    "Ý Nghĩa Linh Phù",
		Instructions: "Hướng Dẫn Sử Dụng",
		Saved:        "Đã lưu bùa hộ mệnh vào %s",
		Loading:      "AI Thiện Giác đang trì chú và vẽ bùa hộ mệnh cho bạn. Xin hãy thành tâm chờ đợi...",
		Placeholder:  "Một đóa sen biểu tượng đã được vẽ thay cho linh phù riêng.",
		WishTypes: []Preset{
			{Key: "overall_luck", Label: "Tổng Hợp May Mắn & Bình An"},
			{Key: "career", Label: "Công Danh Sự Nghiệp"},
			{Key: "wealth", Label: "Tài Lộc Hanh Thông"},
			{Key: "love", Label: "Tình Duyên Viên Mãn"},
			{Key: "health", Label: "Bình An Sức Khỏe"},
			{Key: "education", Label: "Học Vấn Thi Cử"},
		},
		Fallback: domain.TalismanText{
			BlessingText: "Nguyện bình an và năng lượng cát tường luôn ở bên bạn, soi sáng con đường bạn đi.",
			Explanation:  "Đóa sen thiêng này là biểu tượng của sự thuần khiết, giác ngộ và tái sinh. Nó tỏa ra năng lượng ôn hòa, mang lại sự tĩnh tại cho tâm hồn và thu hút phúc lành từ mười phương.",
			Instructions: "Lưu hình ảnh linh phù này vào thiết bị của bạn. Hãy nhìn vào nó mỗi khi cần sự tĩnh tâm và tập trung ý niệm vào những mong ước của mình. Hãy để năng lượng tích cực của nó dẫn lối cho bạn.",
		},
	},
}
