package sentiment

// Built-in lexicons tuned for transaction notes and marketing copy.
// The two lists are disjoint; TestLexiconsDisjoint pins that.

// PositiveWords is the default positive lexicon.
var PositiveWords = []string{
	"amazing", "awesome", "beautiful", "best", "boost", "brilliant",
	"delighted", "easy", "excellent", "exceptional", "exciting",
	"fantastic", "flawless", "glad", "great", "grew", "growth", "happy",
	"helpful", "impressive", "love", "loved", "outstanding", "perfect",
	"pleased", "positive", "profit", "quality", "recommend", "reliable",
	"satisfied", "smooth", "strong", "success", "successful", "superb",
	"thanks", "thrilled", "win", "wonderful",
}

// NegativeWords is the default negative lexicon.
var NegativeWords = []string{
	"angry", "awful", "bad", "broken", "cancel", "cancelled",
	"complaint", "crash", "damaged", "decline", "delayed",
	"disappointed", "disappointing", "dispute", "down", "error", "fail",
	"failed", "failure", "fraud", "frustrating", "horrible", "issue",
	"late", "lost", "negative", "overcharged", "poor", "problem",
	"refund", "refused", "slow", "terrible", "unhappy", "unreliable",
	"urgent", "waste", "worst", "wrong",
}
