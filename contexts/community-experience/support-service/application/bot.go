package application

import "strings"

// SuggestedQuestion is a canned question-and-answer pair the bot offers
// up front.
type SuggestedQuestion struct {
	ID       string
	Question string
	Answer   string
}

// SuggestedQuestions returns the fixed set of quick questions shown in the
// support widget.
func SuggestedQuestions() []SuggestedQuestion {
	return []SuggestedQuestion{
		{
			ID:       "1",
			Question: "How does insurance work?",
			Answer:   "Every rental on Rentloo is insured up to ₹25,00,000. It covers damages, theft, and loss during the rental period. The insurance fee is included in the service fee.",
		},
		{
			ID:       "2",
			Question: "How do I verify my ID?",
			Answer:   "You can verify your ID in your profile settings. We use BankID or secure document upload (Passport/Driver's License) to ensure our community is safe.",
		},
		{
			ID:       "3",
			Question: "When do I get paid?",
			Answer:   "If you are renting out an item, payouts are processed automatically 3 business days after the rental period ends successfully.",
		},
		{
			ID:       "4",
			Question: "Can I cancel a booking?",
			Answer:   "Yes! You can cancel up to 24 hours before the rental starts for a full refund. Late cancellations may incur a fee.",
		},
	}
}

const fallbackAnswer = "I'm not sure about that. Try one of the suggested questions below."

// Answer resolves a free-text query to a canned reply. Matching is by
// keyword, first hit wins; unknown queries get the fallback reply.
func Answer(query string) string {
	queryLower := strings.ToLower(query)

	for _, suggested := range SuggestedQuestions() {
		if strings.EqualFold(strings.TrimSpace(query), suggested.Question) {
			return suggested.Answer
		}
	}

	switch {
	case strings.Contains(queryLower, "how does rentloo work"):
		return "Rentloo makes renting simple! Here are the key operations:\n\n" +
			"Browse & Rent: Search for items nearby, check availability on the calendar, and request a booking.\n\n" +
			"List Items: Have unused gear? Use our 'Create Listing' feature with the Smart Camera to list it in seconds.\n\n" +
			"Secure Payment: Pay securely via Card, UPI, or Wallet. Money is held until the owner accepts.\n\n" +
			"Meet & Exchange: Pick up the item from the owner and return it when you're done."
	case strings.Contains(queryLower, "about rentloo"):
		return "Rentloo is a peer-to-peer rental marketplace where you can borrow items from your neighbors instead of buying them. We aim to reduce waste, save you money, and build stronger communities!"
	case strings.Contains(queryLower, "guarantee") || strings.Contains(queryLower, "insurance"):
		return "We provide a comprehensive guarantee. Every rental is insured up to ₹25,00,000 against damage and theft. Both owners and renters are verified for safety."
	case strings.Contains(queryLower, "faq"):
		return "Here are some of our most frequently asked questions. Click on any of the buttons below to learn more."
	case strings.Contains(queryLower, "terms"):
		return "Our Terms and Conditions ensure a safe community. Key points: Users must be 18+, ID verification is mandatory, and you are responsible for the item during the rental period. Cancellations are free up to 24h before start."
	case strings.Contains(queryLower, "privacy"):
		return "We take privacy seriously. Your data is encrypted and stored securely. We do not sell your data. You can manage your privacy settings in your profile."
	case strings.Contains(queryLower, "partnership"):
		return "We are always looking for great partners! Whether you are a business or an influencer, please reach out to us at partners@rentloo.com with your proposal."
	default:
		return fallbackAnswer
	}
}
