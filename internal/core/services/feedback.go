package services

import (
	"github.com/njuphywg-cyber/weight-loss-app/internal/core/domain"
)

type feedbackBucket string

const (
	bucketHighEffort feedbackBucket = "high_effort"
	bucketMidEffort  feedbackBucket = "mid_effort"
	bucketLowEffort  feedbackBucket = "low_effort"
	bucketBinge      feedbackBucket = "binge"
	bucketLowMood    feedbackBucket = "low_mood"
)

type feedbackTemplate struct {
	Title           string
	EmpathyLine     string
	AchievementLine string
	MicroAction     string
}

var feedbackTemplates = map[feedbackBucket]map[domain.Tone]feedbackTemplate{
	bucketHighEffort: {
		domain.ToneCute: {
			Title:           "今天超棒！",
			EmpathyLine:     "你不是靠狠，你是靠稳。这个最强。",
			AchievementLine: "今天的努力都算数，每一步都值得骄傲！",
			MicroAction:     "记得给自己一个拥抱",
		},
		domain.ToneCalm: {
			Title:           "坚持得很好",
			EmpathyLine:     "稳定的节奏比爆发更有力量",
			AchievementLine: "今天完成得很好，继续保持",
			MicroAction:     "适当休息，保持状态",
		},
		domain.ToneFunny: {
			Title:           "卷王本卷！",
			EmpathyLine:     "今天又是自律的一天呢",
			AchievementLine: "这节奏，体重看了都要抖三抖",
			MicroAction:     "奖励自己一下",
		},
		domain.ToneSerious: {
			Title:           "优秀表现",
			EmpathyLine:     "持续的努力正在带来改变",
			AchievementLine: "今天的完成度很高，目标在靠近",
			MicroAction:     "保持这个节奏",
		},
	},
	bucketMidEffort: {
		domain.ToneCute: {
			Title:           "今天也不错",
			EmpathyLine:     "小步前进也是前进",
			AchievementLine: "你做到了力所能及的事",
			MicroAction:     "明天继续加油",
		},
		domain.ToneCalm: {
			Title:           "稳步进行",
			EmpathyLine:     "保持节奏就好",
			AchievementLine: "今天有在坚持，很好",
			MicroAction:     "保持现状",
		},
		domain.ToneFunny: {
			Title:           "不卷不躺",
			EmpathyLine:     "今天走的是稳健路线",
			AchievementLine: "至少没躺平，值得表扬",
			MicroAction:     "明天再努力一点",
		},
		domain.ToneSerious: {
			Title:           "正常完成",
			EmpathyLine:     "稳定的执行很重要",
			AchievementLine: "今天有完成打卡，继续保持",
			MicroAction:     "逐步提升强度",
		},
	},
	bucketLowEffort: {
		domain.ToneCute: {
			Title:           "电量低也没关系",
			EmpathyLine:     "电量低也没关系，我们先把\"不放弃\"打个卡",
			AchievementLine: "至少你还记得打卡，这已经很棒了",
			MicroAction:     "今晚好好休息",
		},
		domain.ToneCalm: {
			Title:           "理解你的状态",
			EmpathyLine:     "偶尔的低电量是正常的",
			AchievementLine: "打卡本身就是一种坚持",
			MicroAction:     "先照顾好自己",
		},
		domain.ToneFunny: {
			Title:           "躺平日",
			EmpathyLine:     "今天走的是佛系路线",
			AchievementLine: "至少打卡了，不算完全躺平",
			MicroAction:     "明天再战",
		},
		domain.ToneSerious: {
			Title:           "需要调整",
			EmpathyLine:     "今天完成度较低，可能需要调整",
			AchievementLine: "打卡了就是进步",
			MicroAction:     "分析原因，明天改进",
		},
	},
	bucketBinge: {
		domain.ToneCute: {
			Title:           "你不是失败",
			EmpathyLine:     "你不是失败，你只是很累。今晚先照顾好自己",
			AchievementLine: "能意识到并记录，已经是勇气",
			MicroAction:     "明天重新开始",
		},
		domain.ToneCalm: {
			Title:           "理解你的感受",
			EmpathyLine:     "偶尔的失控不代表失败",
			AchievementLine: "记录本身就是一种面对",
			MicroAction:     "不要自责，明天继续",
		},
	},
	bucketLowMood: {
		domain.ToneCute: {
			Title:           "抱抱你",
			EmpathyLine:     "心情不好的时候，先照顾好情绪",
			AchievementLine: "你今天已经很努力了",
			MicroAction:     "做点让自己开心的事",
		},
		domain.ToneCalm: {
			Title:           "理解你的状态",
			EmpathyLine:     "情绪波动是正常的",
			AchievementLine: "坚持打卡本身就是进步",
			MicroAction:     "先调整心情",
		},
	},
}

var genericFeedback = feedbackTemplate{
	Title:           "今天辛苦了",
	EmpathyLine:     "坚持本身就是一种胜利",
	AchievementLine: "你做得很好",
	MicroAction:     "继续加油",
}

// FeedbackGenerator maps a classification to an empathetic feedback card
// by template lookup. Pure and deterministic; it never fails.
type FeedbackGenerator struct{}

func NewFeedbackGenerator() *FeedbackGenerator {
	return &FeedbackGenerator{}
}

// Generate picks the template bucket by priority (binge, then low mood,
// then effort tier) and the variant by tone with an explicit fallback
// chain: exact tone, calm, then the generic message.
func (g *FeedbackGenerator) Generate(state domain.StateClassification, tone domain.Tone) domain.FeedbackCard {
	if !domain.ValidTone(tone) {
		tone = domain.ToneCalm
	}

	bucket := feedbackBucket(string(state.EffortLevel) + "_effort")
	if state.RiskFlag == domain.RiskBinge {
		bucket = bucketBinge
	} else if state.MoodState == domain.MoodStateLow {
		bucket = bucketLowMood
	}

	template := genericFeedback
	if variants, ok := feedbackTemplates[bucket]; ok {
		if t, ok := variants[tone]; ok {
			template = t
		} else if t, ok := variants[domain.ToneCalm]; ok {
			template = t
		}
	}

	return domain.FeedbackCard{
		Title:           template.Title,
		EmpathyLine:     template.EmpathyLine,
		AchievementLine: template.AchievementLine,
		MicroAction:     template.MicroAction,
		StyleTag:        tone,
		SafeLevel:       domain.SafeLevelNormal,
	}
}
