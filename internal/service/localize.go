package service

import "github.com/mmw1984/timetable/internal/models"

// Display strings shown to the school's audience (Traditional Chinese).

var weekdayNames = [7]string{"星期日", "星期一", "星期二", "星期三", "星期四", "星期五", "星期六"}

var variantNames = map[models.Variant]string{
	models.VariantNormal:   "正常時間表",
	models.VariantSpecialA: "特別時間表A",
	models.VariantSpecialB: "特別時間表B",
	models.VariantSpecialC: "特別時間表C",
	models.VariantSpecialD: "特別時間表D",
	models.VariantSpecialE: "特別時間表E",
	models.VariantNone:     "無課堂",
}

const (
	weekendMessage   = "週末休息"
	nonSchoolMessage = "今天不用上課"
)

func variantName(v models.Variant) string {
	if name, ok := variantNames[v]; ok {
		return name
	}
	return string(v)
}
