package dashboard

// Provider enumeration order used for persona grouping.
var providerOrder = []string{"OpenAI", "Anthropic", "Google", "Ollama"}

var specializationOrder = []string{
	"General AI",
	"Content Writing",
	"Data Analysis",
	"Code Generation",
	"Research",
	"Image Generation",
}

var defaultPersonas = []Persona{
	{ID: 1, Name: "GPT-4", Provider: "OpenAI", Specialization: "General AI", Description: "Advanced language model for general-purpose tasks", Rating: 4.8, Active: true, Icon: "🤖", Color: "bg-blue-500"},
	{ID: 2, Name: "Claude", Provider: "Anthropic", Specialization: "Content Writing", Description: "Constitutional AI focused on helpful, harmless, and honest responses", Rating: 4.7, Active: true, Icon: "📝", Color: "bg-purple-500"},
	{ID: 3, Name: "Gemini Pro", Provider: "Google", Specialization: "Data Analysis", Description: "Multimodal AI model for complex reasoning tasks", Rating: 4.6, Active: false, Icon: "📊", Color: "bg-green-500"},
	{ID: 4, Name: "Llama 2", Provider: "Ollama", Specialization: "Code Generation", Description: "Open-source language model for coding tasks", Rating: 4.5, Active: true, Icon: "💻", Color: "bg-orange-500"},
	{ID: 5, Name: "Mixtral", Provider: "Ollama", Specialization: "Research", Description: "Mixture of experts model for research and analysis", Rating: 4.4, Active: false, Icon: "🔬", Color: "bg-red-500"},
	{ID: 6, Name: "DALL-E 3", Provider: "OpenAI", Specialization: "Image Generation", Description: "Advanced text-to-image generation model", Rating: 4.9, Active: true, Icon: "🎨", Color: "bg-pink-500"},
}

var defaultConversations = []Conversation{
	{
		ID: 1, Persona: "GPT-4", Title: "Code Review Session", Date: "2024-01-15", Time: "2:30 PM", Duration: "45 min", Status: "completed", Rating: 4,
		Messages: []Message{
			{Sender: SenderUser, Content: "Can you review this React component for me?", Timestamp: "2:30 PM"},
			{Sender: SenderAI, Content: "I'd be happy to help! Please share the component code.", Timestamp: "2:31 PM"},
			{Sender: SenderUser, Content: "Here's the code: [component code]", Timestamp: "2:32 PM"},
			{Sender: SenderAI, Content: "Great! I can see several areas for improvement...", Timestamp: "2:33 PM"},
		},
	},
	{
		ID: 2, Persona: "Claude", Title: "Content Writing Help", Date: "2024-01-14", Time: "10:15 AM", Duration: "30 min", Status: "completed", Rating: 5,
		Messages: []Message{
			{Sender: SenderUser, Content: "I need help writing a blog post about AI", Timestamp: "10:15 AM"},
			{Sender: SenderAI, Content: "I'd be happy to help! What specific aspect of AI would you like to focus on?", Timestamp: "10:16 AM"},
		},
	},
	{
		ID: 3, Persona: "Gemini Pro", Title: "Data Analysis Project", Date: "2024-01-13", Time: "4:00 PM", Duration: "1h 20min", Status: "completed", Rating: 4,
		Messages: []Message{
			{Sender: SenderUser, Content: "Help me analyze this dataset", Timestamp: "4:00 PM"},
			{Sender: SenderAI, Content: "I'll help you analyze the data. Can you share the dataset?", Timestamp: "4:01 PM"},
		},
	},
}

var defaultPlans = []Plan{
	{ID: "basic", Name: "Basic", Price: "$9", Period: "month", Features: []string{"100 conversations/month", "3 AI personas", "Basic support", "Email notifications"}},
	{ID: "pro", Name: "Pro", Price: "$29", Period: "month", Popular: true, Features: []string{"Unlimited conversations", "12 AI personas", "Priority support", "Advanced analytics", "Custom personas", "API access"}},
	{ID: "enterprise", Name: "Enterprise", Price: "$99", Period: "month", Features: []string{"Everything in Pro", "Unlimited personas", "Team collaboration", "Custom integrations", "Dedicated support", "SLA guarantee"}},
}

const defaultPlanID = "pro"

var defaultCurrentPlan = CurrentPlan{Name: "Pro", Price: "$29", Period: "month", NextBilling: "2024-02-15", Status: "active"}

var defaultUsageMeters = []UsageMeter{
	{Label: "Conversations", Used: 847},
	{Label: "AI Personas", Used: 8, Limit: 12},
	{Label: "API Calls", Used: 15423},
}

var defaultInvoices = []Invoice{
	{ID: 1, Date: "2024-01-15", Amount: "$29.00", Status: "paid", Plan: "Pro"},
	{ID: 2, Date: "2023-12-15", Amount: "$29.00", Status: "paid", Plan: "Pro"},
	{ID: 3, Date: "2023-11-15", Amount: "$29.00", Status: "paid", Plan: "Pro"},
	{ID: 4, Date: "2023-10-15", Amount: "$9.00", Status: "paid", Plan: "Basic"},
}

var defaultNotifications = []Notification{
	{ID: 1, Type: NotificationInfo, Title: "New AI Persona Available", Message: "GPT-4 Turbo is now available for all Pro subscribers", Time: "2 hours ago", Category: "product"},
	{ID: 2, Type: NotificationSuccess, Title: "Payment Successful", Message: "Your Pro subscription has been renewed for another month", Time: "1 day ago", Category: "billing"},
	{ID: 3, Type: NotificationWarning, Title: "Usage Limit Warning", Message: "You have used 80% of your monthly conversation limit", Time: "2 days ago", Read: true, Category: "usage"},
	{ID: 4, Type: NotificationInfo, Title: "Platform Update", Message: "New features added: Custom personas and improved search", Time: "3 days ago", Read: true, Category: "product"},
	{ID: 5, Type: NotificationSuccess, Title: "Profile Updated", Message: "Your profile information has been successfully updated", Time: "1 week ago", Read: true, Category: "account"},
	{ID: 6, Type: NotificationWarning, Title: "Maintenance Scheduled", Message: "Platform maintenance scheduled for tonight 2-4 AM EST", Time: "1 week ago", Read: true, Category: "system"},
}

var notificationCategoryNames = []Category{
	{ID: "product", Name: "Product Updates"},
	{ID: "billing", Name: "Billing"},
	{ID: "usage", Name: "Usage"},
	{ID: "account", Name: "Account"},
	{ID: "system", Name: "System"},
}

var defaultFAQCategories = []Category{
	{ID: "getting-started", Name: "Getting Started"},
	{ID: "ai-personas", Name: "AI Personas"},
	{ID: "billing", Name: "Billing"},
	{ID: "technical", Name: "Technical Issues"},
	{ID: "account", Name: "Account Management"},
}

var defaultFAQs = []FAQ{
	{ID: 1, Category: "getting-started", Question: "How do I get started with the AI Management Platform?", Answer: "Getting started is easy! After signing up, you can browse our AI personas, select one that matches your needs, and start a conversation. Our onboarding tutorial will guide you through the key features."},
	{ID: 2, Category: "ai-personas", Question: "What AI personas are available?", Answer: "We offer a variety of AI personas from different providers including OpenAI, Anthropic, Google, and Ollama. Each persona specializes in different areas like content writing, code generation, data analysis, and more."},
	{ID: 3, Category: "ai-personas", Question: "Can I customize AI persona settings?", Answer: "Yes! You can customize response style, verbosity, and other preferences for each AI persona. These settings are saved and applied to future conversations with that persona."},
	{ID: 4, Category: "billing", Question: "What payment methods do you accept?", Answer: "We accept all major credit cards (Visa, MasterCard, American Express) and PayPal. All payments are processed securely through our encrypted payment system."},
	{ID: 5, Category: "billing", Question: "Can I cancel my subscription anytime?", Answer: "Yes, you can cancel your subscription at any time from your billing settings. Your access will continue until the end of your current billing period."},
	{ID: 6, Category: "technical", Question: "Why is my AI persona not responding?", Answer: "This could be due to several reasons: the persona might be inactive, there could be a temporary service issue, or you might have reached your usage limit. Check your persona settings and subscription status."},
	{ID: 7, Category: "account", Question: "How do I reset my password?", Answer: "You can reset your password by clicking the \"Forgot Password\" link on the login page. We'll send you an email with instructions to create a new password."},
	{ID: 8, Category: "technical", Question: "How do I export my conversation history?", Answer: "You can export your conversation history from the Settings page. Click on \"Export Data\" and choose the format you prefer (JSON, CSV, or PDF)."},
}

var defaultSupportChannels = []SupportChannel{
	{ID: "email", Title: "Email Support", Subtitle: "Get help via email", Description: "Send us a message and we'll respond within 24 hours", Icon: "mail", Action: "contact"},
	{ID: "chat", Title: "Live Chat", Subtitle: "Chat with our team", Description: "Available Mon-Fri, 9am-5pm EST", Icon: "message-circle"},
	{ID: "docs", Title: "Documentation", Subtitle: "Browse our guides", Description: "Comprehensive guides and tutorials", Icon: "book"},
}

var defaultOnboardingSteps = []OnboardingStep{
	{
		ID:       "welcome",
		Title:    "Welcome to AI Management Platform",
		Subtitle: "Your gateway to specialized AI assistants",
		Body:     "Discover and interact with AI personas from top providers like OpenAI, Anthropic, Google, and more.",
		Highlights: []OnboardingHighlight{
			{Title: "Multiple AI Providers"},
			{Title: "Seamless Conversations"},
			{Title: "Customizable Experience"},
		},
	},
	{
		ID:       "personas",
		Title:    "Explore AI Personas",
		Subtitle: "Find the perfect AI assistant for your needs",
		Heading:  "Available Personas:",
		Highlights: []OnboardingHighlight{
			{Title: "GPT-4 - General AI", Description: "Advanced language model for general tasks"},
			{Title: "Claude - Content Writing", Description: "Constitutional AI for helpful responses"},
			{Title: "Gemini - Data Analysis", Description: "Multimodal AI for complex reasoning"},
		},
		Tip: "Tip: Use the search and filter options to quickly find personas that match your specific needs.",
	},
	{
		ID:       "conversations",
		Title:    "Start Conversations",
		Subtitle: "Learn how to interact with AI personas",
		Heading:  "Getting Started:",
		Highlights: []OnboardingHighlight{
			{Title: "Select a Persona", Description: "Choose from available AI assistants"},
			{Title: "Start Chatting", Description: "Type your message and get instant responses"},
			{Title: "Customize Settings", Description: "Adjust response style and preferences"},
		},
		Tip: "Pro Tip: All conversations are automatically saved to your history for easy reference.",
	},
	{
		ID:       "features",
		Title:    "Key Features",
		Subtitle: "Make the most of your AI platform",
		Highlights: []OnboardingHighlight{
			{Title: "Conversation History", Description: "Access and search through all your past conversations"},
			{Title: "Persona Settings", Description: "Customize AI behavior for each persona"},
			{Title: "Multiple Providers", Description: "Access AI from OpenAI, Anthropic, Google, and more"},
			{Title: "Feedback System", Description: "Rate responses and provide feedback"},
		},
		Tip: "Remember: You can always access help and support from the sidebar menu.",
	},
	{
		ID:       "complete",
		Title:    "You're All Set!",
		Subtitle: "Ready to start your AI journey",
		Body:     "You now have everything you need to start using the AI Management Platform effectively.",
		Heading:  "Quick Start:",
		Highlights: []OnboardingHighlight{
			{Title: "Start First Conversation"},
		},
	},
}

var defaultStats = []Stat{
	{Label: "Total Conversations", Value: "1,234", Icon: "message-circle", Color: "bg-blue-500"},
	{Label: "Active Personas", Value: "12", Icon: "users", Color: "bg-green-500"},
	{Label: "Avg Response Time", Value: "0.8s", Icon: "clock", Color: "bg-yellow-500"},
	{Label: "Monthly Growth", Value: "+23%", Icon: "trending-up", Color: "bg-purple-500"},
}

var defaultRecentConversations = []RecentConversation{
	{Persona: "GPT-4", Topic: "Code Review", Time: "2 hours ago", Status: "completed"},
	{Persona: "Claude", Topic: "Content Writing", Time: "4 hours ago", Status: "active"},
	{Persona: "Gemini", Topic: "Data Analysis", Time: "1 day ago", Status: "completed"},
}

var defaultUsageFigures = []UsageFigure{
	{Label: "Daily Active Users", Value: "2,847"},
	{Label: "Peak Usage Time", Value: "2:00 PM"},
	{Label: "Most Used Persona", Value: "GPT-4"},
	{Label: "Success Rate", Value: "98.5%", Highlight: true},
}

// Weekly conversation volume plotted on the dashboard usage chart.
var defaultUsageSeries = []ChartPoint{
	{Label: "Mon", Value: 162},
	{Label: "Tue", Value: 189},
	{Label: "Wed", Value: 204},
	{Label: "Thu", Value: 178},
	{Label: "Fri", Value: 231},
	{Label: "Sat", Value: 126},
	{Label: "Sun", Value: 144},
}

var defaultProfile = Profile{
	Name:        "Alex Morgan",
	Email:       "alex.morgan@example.com",
	Role:        "Workspace Owner",
	Company:     "Acme Labs",
	Plan:        "Pro",
	MemberSince: "2023-06-01",
	Avatar:      "AM",
}

// DefaultPersonas returns a copy of the persona catalog.
func DefaultPersonas() []Persona {
	return append([]Persona(nil), defaultPersonas...)
}

// ProviderOrder returns the provider enumeration used for grouping and the provider select.
func ProviderOrder() []string {
	return append([]string(nil), providerOrder...)
}

// SpecializationOrder returns the specialization select options.
func SpecializationOrder() []string {
	return append([]string(nil), specializationOrder...)
}

// DefaultConversations returns a deep copy of the conversation history.
func DefaultConversations() []Conversation {
	out := make([]Conversation, len(defaultConversations))
	for i, c := range defaultConversations {
		c.Messages = append([]Message(nil), c.Messages...)
		out[i] = c
	}
	return out
}

// DefaultPlans returns a deep copy of the subscription plans.
func DefaultPlans() []Plan {
	out := make([]Plan, len(defaultPlans))
	for i, p := range defaultPlans {
		p.Features = append([]string(nil), p.Features...)
		out[i] = p
	}
	return out
}

// DefaultInvoices returns a copy of the billing history.
func DefaultInvoices() []Invoice {
	return append([]Invoice(nil), defaultInvoices...)
}

// DefaultNotifications returns a copy of the seeded inbox.
func DefaultNotifications() []Notification {
	return append([]Notification(nil), defaultNotifications...)
}

// DefaultFAQs returns a copy of the FAQ list.
func DefaultFAQs() []FAQ {
	return append([]FAQ(nil), defaultFAQs...)
}

// DefaultFAQCategories returns the FAQ category options, excluding the "all" entry.
func DefaultFAQCategories() []Category {
	return append([]Category(nil), defaultFAQCategories...)
}

// DefaultOnboardingSteps returns a copy of the wizard steps.
func DefaultOnboardingSteps() []OnboardingStep {
	out := make([]OnboardingStep, len(defaultOnboardingSteps))
	for i, s := range defaultOnboardingSteps {
		s.Highlights = append([]OnboardingHighlight(nil), s.Highlights...)
		out[i] = s
	}
	return out
}
