package catalog

import (
	"time"

	"dashkit/internal/domain/models"
)

// Seed data shown by the dashboard when no database or overlay is
// configured. Each call returns a fresh slice.

func SeedItems() []models.Item {
	return []models.Item{
		{ID: 1, Name: "Wireless Keyboard Pro", SKU: "WKB-001", Category: "Electronics", Price: 89.99, Stock: 245, Status: "Active"},
		{ID: 2, Name: "USB-C Hub 7-Port", SKU: "USB-042", Category: "Electronics", Price: 45.00, Stock: 12, Status: "Low Stock"},
		{ID: 3, Name: "Monitor Stand Deluxe", SKU: "MST-003", Category: "Accessories", Price: 34.99, Stock: 0, Status: "Out of Stock"},
		{ID: 4, Name: "Mechanical Mouse", SKU: "MCM-017", Category: "Electronics", Price: 59.99, Stock: 88, Status: "Active"},
		{ID: 5, Name: "Laptop Backpack 17\"", SKU: "LBP-005", Category: "Bags", Price: 79.00, Stock: 150, Status: "Active"},
		{ID: 6, Name: "Desk Lamp LED", SKU: "DLP-011", Category: "Furniture", Price: 44.99, Stock: 7, Status: "Low Stock"},
		{ID: 7, Name: "Cable Management Kit", SKU: "CMK-009", Category: "Accessories", Price: 19.99, Stock: 320, Status: "Active"},
		{ID: 8, Name: "Webcam 4K Pro", SKU: "WCM-022", Category: "Electronics", Price: 129.00, Stock: 0, Status: "Out of Stock"},
		{ID: 9, Name: "Ergonomic Chair Pad", SKU: "ECP-013", Category: "Furniture", Price: 55.00, Stock: 42, Status: "Active"},
		{ID: 10, Name: "Portable SSD 2TB", SKU: "SSD-031", Category: "Storage", Price: 189.99, Stock: 23, Status: "Active"},
		{ID: 11, Name: "Blue Light Glasses", SKU: "BLG-007", Category: "Accessories", Price: 24.99, Stock: 5, Status: "Low Stock"},
		{ID: 12, Name: "Headphone Stand", SKU: "HPS-018", Category: "Accessories", Price: 29.00, Stock: 65, Status: "Active"},
	}
}

func SeedOrders() []models.Order {
	return []models.Order{
		{ID: "ORD-1047", Customer: "Acme Corp", Email: "orders@acme.com", Date: "Feb 28, 2026", Items: 5, Total: 320.00, Status: "Pending"},
		{ID: "ORD-1046", Customer: "Bright Ideas Inc", Email: "billing@brightideas.io", Date: "Feb 27, 2026", Items: 2, Total: 89.99, Status: "Shipped"},
		{ID: "ORD-1045", Customer: "Nova Systems", Email: "nova@nova.co", Date: "Feb 26, 2026", Items: 8, Total: 1240.00, Status: "Delivered"},
		{ID: "ORD-1044", Customer: "TechStream", Email: "finance@techstream.dev", Date: "Feb 25, 2026", Items: 3, Total: 450.50, Status: "Processing"},
		{ID: "ORD-1043", Customer: "Greenleaf Co", Email: "orders@greenleaf.com", Date: "Feb 24, 2026", Items: 1, Total: 59.99, Status: "Delivered"},
		{ID: "ORD-1042", Customer: "Pinnacle Ltd", Email: "admin@pinnacle.biz", Date: "Feb 23, 2026", Items: 4, Total: 220.00, Status: "Cancelled"},
		{ID: "ORD-1041", Customer: "Blue Horizon", Email: "ops@bluehorizon.net", Date: "Feb 22, 2026", Items: 7, Total: 870.25, Status: "Shipped"},
		{ID: "ORD-1040", Customer: "Sparkle Media", Email: "accounts@sparkle.tv", Date: "Feb 21, 2026", Items: 2, Total: 130.00, Status: "Delivered"},
		{ID: "ORD-1039", Customer: "Redstone Labs", Email: "finance@redstone.io", Date: "Feb 20, 2026", Items: 6, Total: 510.00, Status: "Processing"},
		{ID: "ORD-1038", Customer: "Cascade Group", Email: "cascade@example.com", Date: "Feb 19, 2026", Items: 3, Total: 199.99, Status: "Pending"},
	}
}

func SeedProjects() []models.Project {
	return []models.Project{
		{ID: 1, Name: "Customer Portal v2", Description: "Redesign the self-service customer portal with modern UI.", Status: "On Track", Priority: "High", Progress: 72, Team: 5, DueDate: "Mar 15, 2026", Tag: "Frontend"},
		{ID: 2, Name: "Payment Gateway Migration", Description: "Move from legacy payment provider to Stripe.", Status: "At Risk", Priority: "Critical", Progress: 34, Team: 3, DueDate: "Feb 28, 2026", Tag: "Backend"},
		{ID: 3, Name: "Analytics Dashboard", Description: "Build internal analytics and reporting dashboard.", Status: "On Track", Priority: "Medium", Progress: 58, Team: 4, DueDate: "Apr 10, 2026", Tag: "Data"},
		{ID: 4, Name: "Mobile App iOS", Description: "Native iOS app for enterprise clients.", Status: "On Track", Priority: "High", Progress: 45, Team: 6, DueDate: "May 30, 2026", Tag: "Mobile"},
		{ID: 5, Name: "API Rate Limiting", Description: "Implement rate limiting and API key management.", Status: "Completed", Priority: "Low", Progress: 100, Team: 2, DueDate: "Jan 31, 2026", Tag: "Backend"},
		{ID: 6, Name: "SOC 2 Compliance", Description: "Achieve SOC 2 Type II certification.", Status: "At Risk", Priority: "Critical", Progress: 61, Team: 7, DueDate: "Mar 31, 2026", Tag: "Security"},
		{ID: 7, Name: "Microservices Refactor", Description: "Break monolith into independent microservices.", Status: "Blocked", Priority: "High", Progress: 22, Team: 8, DueDate: "Jun 30, 2026", Tag: "Infrastructure"},
		{ID: 8, Name: "Email Campaign System", Description: "Build automated drip email campaign infrastructure.", Status: "On Track", Priority: "Medium", Progress: 88, Team: 3, DueDate: "Mar 5, 2026", Tag: "Marketing"},
	}
}

func SeedTeam() []models.TeamMember {
	return []models.TeamMember{
		{ID: 1, Name: "Sarah Johnson", Email: "sarah@corp.com", Dept: "Engineering", Role: "Lead Engineer", Status: "Active", Joined: "Jan 2023"},
		{ID: 2, Name: "Marcus Williams", Email: "marcus@corp.com", Dept: "Design", Role: "Senior Designer", Status: "Active", Joined: "Mar 2022"},
		{ID: 3, Name: "Emily Chen", Email: "emily@corp.com", Dept: "Product", Role: "Product Manager", Status: "Active", Joined: "Jun 2023"},
		{ID: 4, Name: "James Rodriguez", Email: "james@corp.com", Dept: "Engineering", Role: "Backend Dev", Status: "On Leave", Joined: "Nov 2021"},
		{ID: 5, Name: "Anna Thompson", Email: "anna@corp.com", Dept: "Marketing", Role: "Growth Lead", Status: "Active", Joined: "Feb 2022"},
		{ID: 6, Name: "David Kim", Email: "david@corp.com", Dept: "Engineering", Role: "DevOps", Status: "Active", Joined: "Jul 2023"},
		{ID: 7, Name: "Priya Patel", Email: "priya@corp.com", Dept: "Operations", Role: "Ops Manager", Status: "Active", Joined: "Oct 2021"},
		{ID: 8, Name: "Noah Bennett", Email: "noah@corp.com", Dept: "Design", Role: "UX Researcher", Status: "Inactive", Joined: "May 2022"},
		{ID: 9, Name: "Olivia Brooks", Email: "olivia@corp.com", Dept: "Finance", Role: "Finance Lead", Status: "Active", Joined: "Sep 2022"},
		{ID: 10, Name: "Ethan Clark", Email: "ethan@corp.com", Dept: "Sales", Role: "Sales Rep", Status: "Active", Joined: "Jan 2024"},
		{ID: 11, Name: "Isabel Torres", Email: "isabel@corp.com", Dept: "Support", Role: "Support Lead", Status: "Active", Joined: "Mar 2023"},
		{ID: 12, Name: "Ryan Foster", Email: "ryan@corp.com", Dept: "Engineering", Role: "Frontend Dev", Status: "On Leave", Joined: "Dec 2022"},
	}
}

func SeedReports() []models.Report {
	return []models.Report{
		{ID: 1, Name: "Q1 2026 Financial Summary", Type: "Financial", Status: "Ready", Generated: "Feb 28, 2026", Size: "2.4 MB", Author: "Finance Team"},
		{ID: 2, Name: "January Sales Performance", Type: "Sales", Status: "Ready", Generated: "Feb 7, 2026", Size: "1.1 MB", Author: "Sales Analytics"},
		{ID: 3, Name: "Infrastructure Cost Analysis", Type: "Operations", Status: "Ready", Generated: "Feb 15, 2026", Size: "3.8 MB", Author: "DevOps Team"},
		{ID: 4, Name: "Employee Headcount Report", Type: "HR", Status: "Ready", Generated: "Feb 20, 2026", Size: "0.9 MB", Author: "HR Department"},
		{ID: 5, Name: "Security Audit Q1 2026", Type: "Security", Status: "Generating", Generated: "In progress", Size: "-", Author: "Security Team"},
		{ID: 6, Name: "Customer Acquisition Metrics", Type: "Sales", Status: "Ready", Generated: "Feb 24, 2026", Size: "1.7 MB", Author: "Growth Team"},
		{ID: 7, Name: "Monthly Operations Review", Type: "Operations", Status: "Scheduled", Generated: "Mar 1, 2026", Size: "-", Author: "Ops Team"},
		{ID: 8, Name: "Product Roadmap Insights", Type: "Operations", Status: "Ready", Generated: "Feb 18, 2026", Size: "2.1 MB", Author: "Product Team"},
		{ID: 9, Name: "Payroll Summary February", Type: "HR", Status: "Ready", Generated: "Feb 28, 2026", Size: "1.3 MB", Author: "HR Department"},
	}
}

func SeedTasks() []models.Task {
	return []models.Task{
		{ID: 1, Title: "Review pull requests for mobile app", Priority: "High", Due: "Today", Done: false, Assignee: "JD"},
		{ID: 2, Title: "Update API documentation", Priority: "Medium", Due: "Tomorrow", Done: false, Assignee: "AS"},
		{ID: 3, Title: "Fix login page bug on Safari", Priority: "High", Due: "Today", Done: true, Assignee: "MK"},
		{ID: 4, Title: "Design new onboarding flow", Priority: "Medium", Due: "Jan 20", Done: false, Assignee: "JD"},
		{ID: 5, Title: "Set up CI/CD pipeline", Priority: "Low", Due: "Jan 25", Done: false, Assignee: "AS"},
		{ID: 6, Title: "Conduct user research interviews", Priority: "Medium", Due: "Jan 22", Done: true, Assignee: "RC"},
		{ID: 7, Title: "Migrate database schemas", Priority: "High", Due: "Jan 18", Done: false, Assignee: "MK"},
		{ID: 8, Title: "Write unit tests for auth module", Priority: "Medium", Due: "Jan 30", Done: false, Assignee: "JD"},
	}
}

func SeedActivity() []models.Activity {
	at := func(s string) time.Time {
		t, err := time.Parse("2006-01-02T15:04:05", s)
		if err != nil {
			panic(err)
		}
		return t
	}
	return []models.Activity{
		{ID: "1", Type: "order", Timestamp: at("2026-02-28T10:30:00"), Message: "New order #ORD-1047 placed for $320.00", User: "Customer Portal"},
		{ID: "2", Type: "alert", Timestamp: at("2026-02-28T09:15:00"), Message: `Low stock warning: "USB-C Hub 7-Port" (12 remaining)`, User: "Inventory System"},
		{ID: "3", Type: "deploy", Timestamp: at("2026-02-28T08:45:00"), Message: "Production deployment v3.2.1 completed successfully", User: "DevOps Pipeline"},
		{ID: "4", Type: "user", Timestamp: at("2026-02-27T17:00:00"), Message: "5 new team members onboarded", User: "HR System"},
		{ID: "5", Type: "order", Timestamp: at("2026-02-27T14:20:00"), Message: "Order #ORD-1046 shipped to customer", User: "Fulfillment"},
		{ID: "6", Type: "alert", Timestamp: at("2026-02-27T11:05:00"), Message: "Database backup completed (98 GB archived)", User: "Backup Service"},
		{ID: "7", Type: "deploy", Timestamp: at("2026-02-26T15:30:00"), Message: "Hotfix #2.1.9 merged and deployed", User: "CI/CD"},
		{ID: "8", Type: "user", Timestamp: at("2026-02-26T10:00:00"), Message: `User account "mike@corp.com" created`, User: "Admin Panel"},
	}
}
