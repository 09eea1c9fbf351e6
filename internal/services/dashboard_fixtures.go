package services

import "dashkit/internal/domain/models"

func up(b bool) *bool { return &b }

var overviewStats = []models.StatCard{
	{Label: "Total Revenue", Value: "$48,295", Change: "+12.5%", Up: up(true)},
	{Label: "Active Users", Value: "2,847", Change: "+4.3%", Up: up(true)},
	{Label: "Orders", Value: "1,204", Change: "+8.1%", Up: up(true)},
	{Label: "Conversion", Value: "3.24%", Change: "-0.6%", Up: up(false)},
}

var fixtureHealth = []models.HealthCheck{
	{Name: "API Gateway", Value: 99, Status: "healthy"},
	{Name: "Database", Value: 87, Status: "healthy"},
	{Name: "CDN", Value: 100, Status: "healthy"},
	{Name: "Storage", Value: 72, Status: "warning"},
}

var quickActions = []models.QuickAction{
	{Label: "New Order", Href: "/orders"},
	{Label: "Add Item", Href: "/items"},
	{Label: "View Reports", Href: "/reports"},
	{Label: "System Status", Href: "/support"},
}

var analyticsMetrics = []models.Metric{
	{Label: "Total Revenue", Value: "$45,231.89", Change: "+20.1%", Trend: "up"},
	{Label: "Active Users", Value: "+2,350", Change: "+180.1%", Trend: "up"},
	{Label: "Performance", Value: "+12.5%", Change: "+7%", Trend: "up"},
	{Label: "Conversion Rate", Value: "3.2%", Change: "-0.4%", Trend: "down"},
	{Label: "Avg Session", Value: "4m 32s", Change: "+12s", Trend: "up"},
	{Label: "Bounce Rate", Value: "24.3%", Change: "-2.1%", Trend: "up"},
	{Label: "New Signups", Value: "1,429", Change: "+8.3%", Trend: "up"},
	{Label: "Churn Rate", Value: "1.8%", Change: "-0.2%", Trend: "up"},
}

var topPages = []models.TopPage{
	{Path: "/dashboard", Sessions: 12843, Change: "+4.2%"},
	{Path: "/analytics", Sessions: 8932, Change: "+1.8%"},
	{Path: "/projects", Sessions: 7421, Change: "+12.1%"},
	{Path: "/items", Sessions: 5832, Change: "-0.9%"},
	{Path: "/reports", Sessions: 4291, Change: "+3.4%"},
}

var trafficSources = []models.TrafficSource{
	{Source: "Organic Search", Value: 42},
	{Source: "Direct", Value: 28},
	{Source: "Referral", Value: 18},
	{Source: "Social Media", Value: 8},
	{Source: "Email", Value: 4},
}

var inbox = []models.Email{
	{ID: 1, From: "Sarah Johnson", Subject: "Q4 Budget Review - Action Required", Preview: "Please review the attached budget spreadsheet and provide your comments by...", Time: "10:32 AM", Starred: true, Avatar: "SJ"},
	{ID: 2, From: "DevOps Team", Subject: "Production deployment successful", Preview: "The deployment of version 3.2.1 was successful. All services are running...", Time: "9:15 AM", Avatar: "DT"},
	{ID: 3, From: "Mark Wilson", Subject: "Re: Sprint Planning for Q1 2026", Preview: "I've updated the sprint board with the new tickets. Let me know if you...!", Time: "Yesterday", Read: true, Avatar: "MW"},
	{ID: 4, From: "GitHub", Subject: "[PR #42] Fix: Authentication edge cases", Preview: "Paul merged pull request #42 into main. This PR fixes several edge cases in...", Time: "Yesterday", Read: true, Avatar: "GH"},
	{ID: 5, From: "Customer Support", Subject: "New support ticket: #SUP-1293", Preview: "A new support ticket has been created by customer example@client.com...", Time: "Jan 15", Read: true, Starred: true, Avatar: "CS"},
	{ID: 6, From: "Finance Department", Subject: "Invoice #INV-2025-0047 awaiting approval", Preview: "This is a reminder that invoice #INV-2025-0047 for $8,500 is pending...", Time: "Jan 14", Read: true, Avatar: "FD"},
}

var conversations = []models.Conversation{
	{ID: 1, Name: "Alice Johnson", LastMessage: "Can you review the PR?", Time: "2m", Unread: 2, Online: true},
	{ID: 2, Name: "Bob Smith", LastMessage: "Thanks for the update!", Time: "15m", Online: true},
	{ID: 3, Name: "Design Team", LastMessage: "New mockups are ready", Time: "1h", Unread: 5},
	{ID: 4, Name: "Charlie Brown", LastMessage: "Meeting postponed to 3pm", Time: "2h"},
	{ID: 5, Name: "Product Team", LastMessage: "Sprint review notes shared", Time: "4h", Unread: 1},
}

var thread = []models.ChatMessage{
	{ID: 1, Sender: "Alice Johnson", Text: "Hey, can you review the PR I just submitted?", Time: "10:32 AM"},
	{ID: 2, Sender: "Me", Text: "Sure! I'll take a look shortly.", Time: "10:34 AM", Mine: true},
	{ID: 3, Sender: "Alice Johnson", Text: "The main changes are in the auth module. There are also some UI fixes.", Time: "10:35 AM"},
	{ID: 4, Sender: "Me", Text: "Got it. Will review both.", Time: "10:37 AM", Mine: true},
	{ID: 5, Sender: "Alice Johnson", Text: "Thanks! Also, there might be a few edge cases to consider.", Time: "10:38 AM"},
}

var calendarEvents = []models.CalendarEvent{
	{ID: 1, Day: 5, Title: "Team Standup", Time: "9:00 AM", Color: "blue"},
	{ID: 2, Day: 8, Title: "Product Review", Time: "2:00 PM", Color: "purple"},
	{ID: 3, Day: 12, Title: "Client Meeting", Time: "10:00 AM", Color: "green"},
	{ID: 4, Day: 15, Title: "Sprint Planning", Time: "1:00 PM", Color: "yellow"},
	{ID: 5, Day: 19, Title: "Design Review", Time: "3:00 PM", Color: "pink"},
	{ID: 6, Day: 22, Title: "Quarterly Review", Time: "11:00 AM", Color: "orange"},
	{ID: 7, Day: 28, Title: "Release Planning", Time: "2:30 PM", Color: "blue"},
}

var faqs = []models.FAQ{
	{Question: "How do I reset my password?", Answer: `Go to Settings > Security > Change Password, or use the "Forgot password" link on the login page.`},
	{Question: "How do I invite team members?", Answer: `Navigate to the Team page and click "Invite Member". Enter their email address and select a role.`},
	{Question: "Can I export my data?", Answer: "Yes! Go to Reports page to generate and download reports in CSV or PDF format."},
	{Question: "How do I configure integrations?", Answer: "Visit the Integrations page to connect your favorite tools and services via API."},
	{Question: "Is there a mobile app?", Answer: "Mobile apps for iOS and Android are currently in development. Stay tuned for updates."},
}

var supportCategories = []models.SupportCategory{
	{Label: "Documentation", Description: "Complete guides and API reference", Count: 48},
	{Label: "Community", Description: "Forums and discussions", Count: 1203},
	{Label: "Tutorials", Description: "Step-by-step video tutorials", Count: 26},
}
