package listquery

type item struct {
	ID       int
	Name     string
	SKU      string
	Category string
	Price    float64
	Stock    int
	Status   string
}

var items = []item{
	{1, "Wireless Keyboard Pro", "WKB-001", "Electronics", 89.99, 245, "Active"},
	{2, "USB-C Hub 7-Port", "USB-042", "Electronics", 45.00, 12, "Low Stock"},
	{3, "Monitor Stand Deluxe", "MST-003", "Accessories", 34.99, 0, "Out of Stock"},
	{4, "Mechanical Mouse", "MCM-017", "Electronics", 59.99, 88, "Active"},
	{5, "Laptop Backpack 17\"", "LBP-005", "Bags", 79.00, 150, "Active"},
	{6, "Desk Lamp LED", "DLP-011", "Furniture", 44.99, 7, "Low Stock"},
	{7, "Cable Management Kit", "CMK-009", "Accessories", 19.99, 320, "Active"},
	{8, "Webcam 4K Pro", "WCM-022", "Electronics", 129.00, 0, "Out of Stock"},
	{9, "Ergonomic Chair Pad", "ECP-013", "Furniture", 55.00, 42, "Active"},
	{10, "Portable SSD 2TB", "SSD-031", "Storage", 189.99, 23, "Active"},
	{11, "Blue Light Glasses", "BLG-007", "Accessories", 24.99, 5, "Low Stock"},
	{12, "Headphone Stand", "HPS-018", "Accessories", 29.00, 65, "Active"},
}

var itemSchema = Schema[item]{
	Fields: map[string]Accessor[item]{
		"id":       func(i item) any { return i.ID },
		"name":     func(i item) any { return i.Name },
		"sku":      func(i item) any { return i.SKU },
		"category": func(i item) any { return i.Category },
		"price":    func(i item) any { return i.Price },
		"stock":    func(i item) any { return i.Stock },
		"status":   func(i item) any { return i.Status },
	},
	SearchFields: []string{"name", "sku"},
	Filters: []FilterField{
		{ID: "status", Label: "Status", Kind: KindMultiSelect, Options: []FilterOption{
			{Value: "Active", Label: "Active"},
			{Value: "Low Stock", Label: "Low Stock"},
			{Value: "Out of Stock", Label: "Out of Stock"},
		}},
		{ID: "category", Label: "Category", Kind: KindMultiSelect},
		{ID: "name", Label: "Name", Kind: KindText},
		{ID: "price", Label: "Price", Kind: KindText},
	},
	Sorts: []SortField{
		{ID: "name", Label: "Name", Kind: SortText},
		{ID: "price", Label: "Price", Kind: SortNumber},
		{ID: "stock", Label: "Stock Units", Kind: SortNumber},
		{ID: "category", Label: "Category", Kind: SortText},
	},
	PageSize: 8,
}

type order struct {
	ID       string
	Customer string
	Date     string
	Total    float64
	Status   string
}

var orders = []order{
	{"ORD-1047", "Acme Corp", "Feb 28, 2026", 320.00, "Pending"},
	{"ORD-1046", "Bright Ideas Inc", "Feb 27, 2026", 89.99, "Shipped"},
	{"ORD-1045", "Nova Systems", "Feb 26, 2026", 1240.00, "Delivered"},
	{"ORD-1044", "TechStream", "Feb 25, 2026", 450.50, "Processing"},
	{"ORD-1043", "Greenleaf Co", "Feb 24, 2026", 59.99, "Delivered"},
	{"ORD-1042", "Pinnacle Ltd", "Feb 23, 2026", 220.00, "Cancelled"},
	{"ORD-1041", "Blue Horizon", "Feb 22, 2026", 870.25, "Shipped"},
	{"ORD-1040", "Sparkle Media", "Feb 21, 2026", 130.00, "Delivered"},
	{"ORD-1039", "Redstone Labs", "Feb 20, 2026", 510.00, "Processing"},
	{"ORD-1038", "Cascade Group", "Feb 19, 2026", 199.99, "Pending"},
}

var orderSchema = Schema[order]{
	Fields: map[string]Accessor[order]{
		"id":       func(o order) any { return o.ID },
		"customer": func(o order) any { return o.Customer },
		"date":     func(o order) any { return o.Date },
		"total":    func(o order) any { return o.Total },
		"status":   func(o order) any { return o.Status },
	},
	SearchFields: []string{"id", "customer"},
	Filters: []FilterField{
		{ID: "status", Label: "Status", Kind: KindMultiSelect},
	},
	Sorts: []SortField{
		{ID: "id", Label: "Order ID", Kind: SortText},
		{ID: "total", Label: "Total", Kind: SortNumber},
		{ID: "date", Label: "Date", Kind: SortDate},
	},
	PageSize: 7,
}

func names(rows []item) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Name
	}
	return out
}
