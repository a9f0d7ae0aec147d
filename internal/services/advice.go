package services

import (
	"math/rand"

	"cradle/internal/models"
)

// The advice tables are fixed text, selected uniformly at random. This is the
// whole "AI" behind the suggestion feature.
var adviceCatalog = map[string][]string{
	models.SuggestionTypeDaily: {
		"建议每天保持8-10小时的充足睡眠，午间可以适当休息30分钟。",
		"每天进行30分钟的温和运动，如散步、孕妇瑜伽等。",
		"保持均衡饮食，多吃新鲜蔬菜水果，补充叶酸和铁质。",
		"多喝水，每天至少8杯水，保持身体水分平衡。",
		"避免长时间站立或坐着，每小时起来活动一下。",
	},
	models.SuggestionTypeHealth: {
		"定期监测血压，保持血压在正常范围内。",
		"注意胎动情况，每天固定时间数胎动，如有异常及时就医。",
		"按时进行产检，不要错过任何一次检查。",
		"注意个人卫生，预防感染。",
		"避免接触有害物质，如烟草、酒精、化学药品等。",
	},
	models.SuggestionTypeNutrition: {
		"每天摄入足够的蛋白质，如鸡蛋、牛奶、瘦肉、豆类等。",
		"补充叶酸，预防胎儿神经管畸形。",
		"多吃富含铁的食物，预防贫血。",
		"适量摄入钙质，促进胎儿骨骼发育。",
		"控制糖分摄入，预防妊娠糖尿病。",
	},
	models.SuggestionTypeExercise: {
		"适合孕妇的运动包括散步、孕妇瑜伽、游泳等。",
		"避免剧烈运动和跳跃性运动。",
		"运动时注意心率，不要超过140次/分钟。",
		"运动前要热身，运动后要拉伸。",
		"如有不适，立即停止运动并咨询医生。",
	},
	models.SuggestionTypeMental: {
		"保持积极乐观的心态，对胎儿发育有益。",
		"可以听舒缓的音乐，放松心情。",
		"与家人朋友多交流，分享孕期感受。",
		"学习育儿知识，为宝宝的到来做好准备。",
		"如有焦虑情绪，及时寻求专业帮助。",
	},
}

const genericAdvice = "根据您的孕期情况，建议保持良好的作息习惯，定期进行产检，如有不适请及时就医。"

// AdviceFor picks one advice string for the type; unknown types get the
// single generic fallback.
func AdviceFor(suggestionType string) string {
	options, known := adviceCatalog[suggestionType]
	if !known {
		return genericAdvice
	}
	return options[rand.Intn(len(options))]
}

// AdviceOptions exposes the fixed table for a type, so callers (and tests)
// can check membership instead of pinning the random pick.
func AdviceOptions(suggestionType string) ([]string, bool) {
	options, known := adviceCatalog[suggestionType]
	if !known {
		return nil, false
	}
	return append([]string(nil), options...), true
}
