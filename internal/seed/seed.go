// Package seed holds the starter data for a fresh deployment: the knowledge
// corpus the advice agent retrieves from, and a small curated question bank.
package seed

import "finlit-agent/internal/models"

// KnowledgeDocuments returns the curated financial-literacy corpus.
func KnowledgeDocuments() []models.KnowledgeDocument {
	return []models.KnowledgeDocument{
		{
			Title:    "UPI Safety Guidelines",
			Content:  "UPI (Unified Payments Interface) is a real-time payment system. To use UPI safely: 1) Never share your UPI PIN with anyone, 2) Always verify the recipient name before sending money, 3) Use only official banking apps, 4) Enable two-factor authentication, 5) Keep your phone secure with a strong password, 6) Never click on suspicious links asking for UPI details, 7) Report any suspicious activity immediately to your bank.",
			Category: "UPI Safety",
			Tags:     []string{"UPI", "safety", "payments", "security"},
		},
		{
			Title:    "Online Banking Security",
			Content:  "Online banking security is crucial for protecting your money. Best practices include: 1) Use strong, unique passwords, 2) Enable two-factor authentication, 3) Never use public WiFi for banking, 4) Keep your devices updated, 5) Log out after each session, 6) Monitor your accounts regularly, 7) Use secure websites (HTTPS), 8) Never share login credentials.",
			Category: "Online Safety",
			Tags:     []string{"online banking", "security", "passwords", "authentication"},
		},
		{
			Title:    "Budgeting Basics",
			Content:  "Budgeting is the foundation of financial health. The 50/30/20 rule suggests: 50% for needs (housing, food, utilities), 30% for wants (entertainment, dining), and 20% for savings and debt repayment. Track your expenses, set financial goals, create an emergency fund, and review your budget regularly.",
			Category: "Budgeting",
			Tags:     []string{"budgeting", "financial planning", "savings", "expenses"},
		},
		{
			Title:    "Interest Rates Explained",
			Content:  "Interest rates affect borrowing and saving. When rates are high, borrowing becomes expensive but savings earn more. When rates are low, borrowing is cheaper but savings earn less. APR (Annual Percentage Rate) includes fees and shows the true cost of borrowing. Compound interest means earning interest on both principal and accumulated interest.",
			Category: "Interest Rates",
			Tags:     []string{"interest rates", "APR", "compound interest", "borrowing"},
		},
		{
			Title:    "Digital Banking Features",
			Content:  "Digital banking offers convenience and security. Features include: 1) 24/7 account access, 2) Mobile check deposits, 3) Bill payments and transfers, 4) Real-time notifications, 5) Budgeting tools, 6) Investment options, 7) Customer support chat. Always use official apps and secure connections.",
			Category: "Digital Banking",
			Tags:     []string{"digital banking", "mobile banking", "convenience", "features"},
		},
		{
			Title:    "Investment Fundamentals",
			Content:  "Investing helps grow wealth over time. Key principles: 1) Diversification reduces risk, 2) Start early to benefit from compound growth, 3) Understand your risk tolerance, 4) Invest for the long term, 5) Consider index funds for beginners, 6) Don't invest money you need soon, 7) Regularly review and rebalance your portfolio.",
			Category: "Investment Basics",
			Tags:     []string{"investing", "diversification", "compound growth", "risk management"},
		},
	}
}

// Questions returns the curated starter question bank.
func Questions() []models.Question {
	return []models.Question{
		{
			Question: "What is the safest way to use UPI?",
			Options: []string{
				"Share your UPI PIN with trusted friends",
				"Use only official banking apps",
				"Use any third-party payment app",
				"Save your UPI ID on public computers",
			},
			Answer:      1,
			Category:    "UPI Safety",
			Explanation: "Always use official banking apps for UPI transactions as they have better security measures.",
		},
		{
			Question: "Which of these is a good budgeting practice?",
			Options: []string{
				"Spend all your money immediately",
				"Track your income and expenses",
				"Ignore your bank statements",
				"Borrow money for daily expenses",
			},
			Answer:      1,
			Category:    "Budgeting",
			Explanation: "Tracking your income and expenses is the foundation of good budgeting.",
		},
		{
			Question: "What should you do if you receive a suspicious SMS?",
			Options: []string{
				"Reply immediately",
				"Click on any links in the message",
				"Delete the message and block the sender",
				"Forward it to friends",
			},
			Answer:      2,
			Category:    "Online Safety",
			Explanation: "Never engage with suspicious messages. Delete them and block the sender.",
		},
		{
			Question: "What is compound interest?",
			Options: []string{
				"Interest only on the principal amount",
				"Interest on both principal and accumulated interest",
				"A type of bank fee",
				"A penalty for late payments",
			},
			Answer:      1,
			Category:    "Interest Rates",
			Explanation: "Compound interest means earning interest on both your initial investment and the interest you've already earned.",
		},
		{
			Question: "Which is safer for online transactions?",
			Options: []string{
				"Debit card",
				"Credit card",
				"Both are equally safe",
				"Cash only",
			},
			Answer:      1,
			Category:    "Digital Banking",
			Explanation: "Credit cards offer better fraud protection and don't directly access your bank account.",
		},
		{
			Question: "What is diversification in investing?",
			Options: []string{
				"Putting all money in one investment",
				"Spreading money across different investments",
				"Investing only in stocks",
				"Avoiding all investments",
			},
			Answer:      1,
			Category:    "Investment Basics",
			Explanation: "Diversification reduces risk by spreading your money across different types of investments.",
		},
	}
}
