package domain

const (
	RoleAdmin = "admin"
	RoleOther = "other"
)

// Service shelf status.
const (
	StatusListed   = "已上架"
	StatusUnlisted = "已下架"
)

// Publish status for cases, FAQs and testimonials.
const (
	StatusPublished = "已发布"
	StatusDraft     = "草稿"
)

// CategoryAll is the filter sentinel meaning "no category filter".
const CategoryAll = "全部"

var ServiceCategories = []string{
	"赌约单", "护航保底", "趣味单", "摸红单", "部门任务", "赛季3x3", "陪玩", "保险单",
}

var FAQCategories = []string{
	"服务相关", "订单相关", "账号安全", "其他问题",
}

// Setting value types and categories.
const (
	SettingTypeText    = "text"
	SettingTypeBoolean = "boolean"
)

var SettingCategories = []string{"general", "contact", "social", "seo"}

// ToggleListed flips a service between 已上架 and 已下架.
func ToggleListed(status string) string {
	if status == StatusListed {
		return StatusUnlisted
	}
	return StatusListed
}

// TogglePublished flips between 已发布 and 草稿.
func TogglePublished(status string) string {
	if status == StatusPublished {
		return StatusDraft
	}
	return StatusPublished
}

// ValidServiceCategory reports whether c is one of the eight service categories.
func ValidServiceCategory(c string) bool {
	for _, v := range ServiceCategories {
		if v == c {
			return true
		}
	}
	return false
}

// ValidFAQCategory reports whether c is one of the four FAQ categories.
func ValidFAQCategory(c string) bool {
	for _, v := range FAQCategories {
		if v == c {
			return true
		}
	}
	return false
}
