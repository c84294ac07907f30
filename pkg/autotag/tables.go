package autotag

import (
	"github.com/Ali-Askari-01/AI-Marketing-Assistant-sub001/pkg/autotag/classify"
)

// Built-in tables. Each call builds a fresh classifier so a caller can
// extend its copy without affecting anyone else's; build once at startup
// and share.

// DefaultCategories returns the built-in spend taxonomy. Definition
// order decides ties, so income sits above the expense buckets.
func DefaultCategories() *classify.Classifier {
	c := classify.New("Uncategorized")
	c.Add("Revenue", []string{
		"invoice", "paid", "payment", "payout", "revenue", "sale",
		"sales", "deposit", "stripe",
	})
	c.Add("Advertising & Marketing", []string{
		"ads", "advertising", "campaign", "facebook ads", "google ads",
		"marketing", "promotion", "seo", "sponsorship",
	})
	c.Add("Software & Cloud", []string{
		"api", "aws", "azure", "cloud", "hosting", "license", "saas",
		"software", "subscription",
	})
	c.Add("Payroll & Contractors", []string{
		"bonus", "contractor", "freelance", "freelancer", "payroll",
		"salary", "wages",
	})
	c.Add("Office & Supplies", []string{
		"desk", "office", "printer", "rent", "stationery", "supplies",
		"utilities",
	})
	c.Add("Travel & Meals", []string{
		"airfare", "flight", "hotel", "lunch", "meals", "mileage",
		"parking", "taxi", "travel", "uber",
	})
	c.Add("Professional Services", []string{
		"accountant", "accounting", "attorney", "audit", "consulting",
		"legal", "notary",
	})
	c.Add("Banking & Fees", []string{
		"bank fee", "chargeback", "interest", "overdraft",
		"processing fee", "transfer fee", "wire",
	})
	return c
}

// DefaultContentTypes returns the built-in content-type taxonomy used
// for marketing content, with its own "general" fallback. Not part of
// the row pipeline.
func DefaultContentTypes() *classify.Classifier {
	c := classify.New("general")
	c.Add("educational", []string{
		"explained", "guide", "how to", "learn", "lesson", "tips",
		"tutorial", "webinar",
	})
	c.Add("promotional", []string{
		"buy", "coupon", "deal", "discount", "flash sale",
		"limited time", "offer", "promo", "save",
	})
	c.Add("engagement", []string{
		"comment", "giveaway", "poll", "question", "share",
		"tag a friend", "tell us", "vote",
	})
	c.Add("announcement", []string{
		"announcement", "coming soon", "introducing", "launch",
		"new arrival", "release", "unveiling",
	})
	c.Add("testimonial", []string{
		"case study", "customer story", "feedback", "review",
		"testimonial", "thank you",
	})
	c.Add("seasonal", []string{
		"black friday", "christmas", "halloween", "holiday",
		"new year", "summer", "valentine",
	})
	return c
}
