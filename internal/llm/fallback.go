package llm

// DefaultFallbackCategory is used when the requested category has no bank.
const DefaultFallbackCategory = "Online Safety"

// FallbackItems returns up to count pre-authored items for a category. This
// is the availability guarantee behind quiz generation: whatever the model
// does, the endpoint always has a well-formed item set to hand out.
func FallbackItems(category string, count int) []RawItem {
	bank, ok := fallbackBank[category]
	if !ok {
		bank = fallbackBank[DefaultFallbackCategory]
	}
	if count <= 0 || count > len(bank) {
		count = len(bank)
	}
	out := make([]RawItem, count)
	copy(out, bank[:count])
	return out
}

var fallbackBank = map[string][]RawItem{
	"UPI Safety": {
		{
			Question: "What should you do before making a UPI payment?",
			Options: []string{
				"Share your UPI PIN with the sender",
				"Verify the recipient's name and UPI ID",
				"Use any public WiFi network",
				"Ignore transaction notifications",
			},
			CorrectAnswer: 1,
			Explanation:   "Always verify the recipient's details before making any UPI payment to avoid sending money to the wrong person.",
		},
		{
			Question: "Which of the following is the safest way to use UPI?",
			Options: []string{
				"Share your UPI ID on social media",
				"Use UPI only on trusted apps",
				"Use the same PIN for all accounts",
				"Ignore security updates",
			},
			CorrectAnswer: 1,
			Explanation:   "Using UPI only on trusted, official banking apps ensures your transactions are secure.",
		},
		{
			Question: "What should you do if you receive a UPI payment request from an unknown number?",
			Options: []string{
				"Accept it immediately",
				"Ignore and block the number",
				"Call the number to verify",
				"Share your UPI ID with them",
			},
			CorrectAnswer: 1,
			Explanation:   "Never accept payment requests from unknown sources as they could be scams.",
		},
		{
			Question: "Which of these is NOT a safe UPI practice?",
			Options: []string{
				"Using a strong, unique PIN",
				"Keeping your UPI ID private",
				"Sharing your UPI PIN with family members",
				"Using official banking apps only",
			},
			CorrectAnswer: 2,
			Explanation:   "Never share your UPI PIN with anyone, including family members, for security reasons.",
		},
		{
			Question: "What should you do if you suspect a fraudulent UPI transaction?",
			Options: []string{
				"Wait and see if it resolves itself",
				"Contact your bank immediately",
				"Share details on social media",
				"Ignore it completely",
			},
			CorrectAnswer: 1,
			Explanation:   "Immediately contact your bank if you suspect fraud to minimize losses and protect your account.",
		},
	},
	"Budgeting": {
		{
			Question: "What is the 50/30/20 budgeting rule?",
			Options: []string{
				"50% needs, 30% wants, 20% savings",
				"50% savings, 30% needs, 20% wants",
				"50% wants, 30% savings, 20% needs",
				"50% entertainment, 30% food, 20% bills",
			},
			CorrectAnswer: 0,
			Explanation:   "The 50/30/20 rule suggests allocating 50% to needs, 30% to wants, and 20% to savings and debt repayment.",
		},
		{
			Question: "What is the first step in creating a budget?",
			Options: []string{
				"Set financial goals",
				"Track your income and expenses",
				"Cut all unnecessary spending",
				"Open a savings account",
			},
			CorrectAnswer: 1,
			Explanation:   "You need to understand your current financial situation before creating an effective budget.",
		},
		{
			Question: "Which expense category should you prioritize in your budget?",
			Options: []string{
				"Entertainment and dining out",
				"Essential needs like food and shelter",
				"Shopping and luxury items",
				"Vacation planning",
			},
			CorrectAnswer: 1,
			Explanation:   "Essential needs like food, shelter, and utilities should always be prioritized in your budget.",
		},
		{
			Question: "What percentage of your income should you aim to save?",
			Options: []string{
				"At least 5-10%",
				"At least 20%",
				"At least 50%",
				"Whatever is left after spending",
			},
			CorrectAnswer: 1,
			Explanation:   "Aim to save at least 20% of your income for emergencies and future goals.",
		},
		{
			Question: "What is an emergency fund?",
			Options: []string{
				"Money saved for vacations",
				"Money saved for unexpected expenses",
				"Money invested in stocks",
				"Money borrowed from friends",
			},
			CorrectAnswer: 1,
			Explanation:   "An emergency fund is money set aside for unexpected expenses like medical bills or job loss.",
		},
	},
	"Online Safety": {
		{
			Question: "What should you do if you receive a suspicious SMS asking for OTP?",
			Options: []string{
				"Reply with the OTP immediately",
				"Call the number back to verify",
				"Ignore and delete the message",
				"Forward it to friends",
			},
			CorrectAnswer: 2,
			Explanation:   "Never share OTPs with anyone, even if they claim to be from your bank. Legitimate banks never ask for OTPs via SMS.",
		},
		{
			Question: "Which of these is a safe online banking practice?",
			Options: []string{
				"Using public WiFi for banking",
				"Sharing login credentials with family",
				"Using strong, unique passwords",
				"Saving passwords in browser",
			},
			CorrectAnswer: 2,
			Explanation:   "Using strong, unique passwords for each account is essential for online security.",
		},
		{
			Question: "What should you do if you suspect your bank account has been compromised?",
			Options: []string{
				"Wait and monitor the situation",
				"Contact your bank immediately",
				"Share the issue on social media",
				"Change your password next week",
			},
			CorrectAnswer: 1,
			Explanation:   "Immediately contact your bank if you suspect fraud to protect your account and minimize losses.",
		},
		{
			Question: "Which of these is NOT a safe online practice?",
			Options: []string{
				"Using two-factor authentication",
				"Logging out after each session",
				"Sharing personal information on social media",
				"Using secure websites (HTTPS)",
			},
			CorrectAnswer: 2,
			Explanation:   "Never share personal information like address, phone number, or financial details on social media.",
		},
		{
			Question: "What should you do before clicking on a link in an email?",
			Options: []string{
				"Click immediately if it looks interesting",
				"Hover over the link to check the URL",
				"Forward it to friends",
				"Reply to the sender",
			},
			CorrectAnswer: 1,
			Explanation:   "Always hover over links to verify the actual URL before clicking to avoid phishing scams.",
		},
	},
	"Interest Rates": {
		{
			Question: "What is compound interest?",
			Options: []string{
				"Interest earned only on the principal amount",
				"Interest earned on both principal and accumulated interest",
				"A fixed rate that never changes",
				"A penalty for late payments",
			},
			CorrectAnswer: 1,
			Explanation:   "Compound interest is interest earned on both the initial principal and the accumulated interest from previous periods.",
		},
		{
			Question: "Which type of loan typically has the highest interest rate?",
			Options: []string{
				"Home loan",
				"Car loan",
				"Credit card",
				"Education loan",
			},
			CorrectAnswer: 2,
			Explanation:   "Credit cards typically have the highest interest rates, often 15-25% or more.",
		},
		{
			Question: "What happens when interest rates increase?",
			Options: []string{
				"Borrowing becomes cheaper",
				"Borrowing becomes more expensive",
				"Savings rates decrease",
				"Nothing changes",
			},
			CorrectAnswer: 1,
			Explanation:   "When interest rates increase, borrowing becomes more expensive as you pay more interest on loans.",
		},
		{
			Question: "What is APR?",
			Options: []string{
				"Annual Percentage Rate",
				"Average Payment Rate",
				"Annual Payment Return",
				"Average Percentage Return",
			},
			CorrectAnswer: 0,
			Explanation:   "APR stands for Annual Percentage Rate and represents the yearly interest rate including fees.",
		},
		{
			Question: "Which is better for borrowers: fixed or variable interest rates?",
			Options: []string{
				"Fixed rates are always better",
				"Variable rates are always better",
				"It depends on market conditions",
				"There's no difference",
			},
			CorrectAnswer: 2,
			Explanation:   "The choice between fixed and variable rates depends on current market conditions and your risk tolerance.",
		},
	},
	"Digital Banking": {
		{
			Question: "What is the main advantage of digital banking?",
			Options: []string{
				"Higher interest rates",
				"Convenience and 24/7 access",
				"Lower fees",
				"Better customer service",
			},
			CorrectAnswer: 1,
			Explanation:   "Digital banking provides convenience and 24/7 access to your accounts from anywhere.",
		},
		{
			Question: "Which of these is a digital banking security feature?",
			Options: []string{
				"Two-factor authentication",
				"Sharing passwords",
				"Using public computers",
				"Saving login details",
			},
			CorrectAnswer: 0,
			Explanation:   "Two-factor authentication adds an extra layer of security to your digital banking account.",
		},
		{
			Question: "What should you do after using a public computer for banking?",
			Options: []string{
				"Leave it logged in for convenience",
				"Log out and clear browser history",
				"Save your password",
				"Share the computer with others",
			},
			CorrectAnswer: 1,
			Explanation:   "Always log out and clear browser history when using public computers to protect your information.",
		},
		{
			Question: "Which is safer for online transactions?",
			Options: []string{
				"Debit card",
				"Credit card",
				"Both are equally safe",
				"Cash only",
			},
			CorrectAnswer: 1,
			Explanation:   "Credit cards offer better fraud protection and don't directly access your bank account.",
		},
		{
			Question: "What is a digital wallet?",
			Options: []string{
				"A physical wallet for digital items",
				"A mobile app that stores payment information",
				"A type of bank account",
				"A cryptocurrency",
			},
			CorrectAnswer: 1,
			Explanation:   "A digital wallet is a mobile app that stores payment information for convenient transactions.",
		},
	},
	"Investment Basics": {
		{
			Question: "What is diversification in investing?",
			Options: []string{
				"Putting all money in one investment",
				"Spreading money across different investments",
				"Investing only in stocks",
				"Avoiding all investments",
			},
			CorrectAnswer: 1,
			Explanation:   "Diversification means spreading your money across different types of investments to reduce risk.",
		},
		{
			Question: "Which investment typically has the lowest risk?",
			Options: []string{
				"Stocks",
				"Bonds",
				"Cryptocurrency",
				"Real estate",
			},
			CorrectAnswer: 1,
			Explanation:   "Bonds typically have lower risk compared to stocks, cryptocurrency, and real estate.",
		},
		{
			Question: "What is compound interest in investing?",
			Options: []string{
				"Interest earned only on initial investment",
				"Interest earned on investment plus previous earnings",
				"A type of tax",
				"A fee charged by brokers",
			},
			CorrectAnswer: 1,
			Explanation:   "Compound interest means earning interest on both your initial investment and the interest you've already earned.",
		},
		{
			Question: "What is the main benefit of long-term investing?",
			Options: []string{
				"Immediate returns",
				"Reduced risk and potential for growth",
				"No taxes",
				"Guaranteed profits",
			},
			CorrectAnswer: 1,
			Explanation:   "Long-term investing reduces risk and provides potential for growth through compound interest.",
		},
		{
			Question: "What should you consider before investing?",
			Options: []string{
				"Only the potential returns",
				"Your risk tolerance and financial goals",
				"What your friends are investing in",
				"The latest trends",
			},
			CorrectAnswer: 1,
			Explanation:   "Before investing, consider your risk tolerance, financial goals, and investment timeline.",
		},
	},
}
