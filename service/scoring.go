package service

// 热度分的封顶参数：各项计数先按上限归一再加权，
// 线性封顶让早期信号占满区间，爆款不会把其他内容挤出量程
const (
	tractionReplyCap    = 15.0
	tractionApplaudCap  = 25.0
	tractionCurationCap = 8.0

	tractionReplyWeight    = 0.4
	tractionApplaudWeight  = 0.3
	tractionCurationWeight = 0.3
)

// 偏好强度的有界线性变换参数，输出压在 [0.1, 0.9]，
// 少量早期信号不会把偏好推到 0/1 两端
const (
	intensityFloor = 0.1
	intensityCeil  = 0.9
	intensityBase  = 0.2
	intensitySlope = 0.6
)

// TractionScore 回复/鼓掌/精选计数归一加权后的热度分，结果在 [0, 1]
func TractionScore(replyCount, applaudCount, curationCount int64) float64 {
	score := tractionReplyWeight*cappedRatio(replyCount, tractionReplyCap) +
		tractionApplaudWeight*cappedRatio(applaudCount, tractionApplaudCap) +
		tractionCurationWeight*cappedRatio(curationCount, tractionCurationCap)
	return clamp(score, 0, 1)
}

// LearnedIntensity 根据正负反馈计数算偏好强度：
// ratio = pos/(pos+neg)（无信号取 0.5），再经 clamp(0.1, 0.9, 0.2 + ratio*0.6)
func LearnedIntensity(positiveCount, negativeCount int64) float64 {
	ratio := 0.5
	if total := positiveCount + negativeCount; total > 0 {
		ratio = float64(positiveCount) / float64(total)
	}
	return clamp(intensityBase+ratio*intensitySlope, intensityFloor, intensityCeil)
}

func cappedRatio(count int64, limit float64) float64 {
	if count <= 0 {
		return 0
	}
	v := float64(count) / limit
	if v > 1 {
		return 1
	}
	return v
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
