package service

import "math"

// Performance messages shown with a quiz result, best first.
const (
	MessageOutstanding = "💙🩷 Outstanding! You're a true Stubborn Dreamer!"
	MessageGreat       = "💖 Great job! You know the series very well!"
	MessageGood        = "😊 Good effort! Maybe time for a rewatch?"
	MessageKeepGoing   = "💪 Keep watching and try again! Every fan journey is unique!"
)

// PerformanceMessage picks the message for a percentage score.
func PerformanceMessage(percentage float64) string {
	switch {
	case percentage >= 90:
		return MessageOutstanding
	case percentage >= 70:
		return MessageGreat
	case percentage >= 50:
		return MessageGood
	default:
		return MessageKeepGoing
	}
}

func roundToOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
