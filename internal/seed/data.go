package seed

type entityRow struct {
	name, kind              string
	registrationNumber, pan *string
	cin                     *string
}

type propertyRow struct {
	address, city, state, pincode, propertyType string
	owner                                       int // index into entities
}

type documentRow struct {
	property, entity int
	docType, docURL  string
	issuedAt         string
}

type transactionRow struct {
	property, entity int
	kind             string
	amount           string
	date             string
}

type landRow struct {
	kind, title, description, address, locality, state, owner, date string
}

func s(v string) *string { return &v }

var entities = []entityRow{
	{name: "ABC Corporation Ltd.", kind: "company", registrationNumber: s("REG123456"), pan: s("ABCDE1234F"), cin: s("L12345MH2000PLC123456")},
	{name: "XYZ Enterprises LLP", kind: "llp", registrationNumber: s("REG789012"), pan: s("FGHIJ5678K"), cin: s("AAA-0000")},
	{name: "John Doe", kind: "individual", pan: s("DOEJH1234G")},
	{name: "Sunrise Developers Pvt. Ltd.", kind: "company", registrationNumber: s("REG345678"), pan: s("SUNPL4567H"), cin: s("U98765MH2010PTC987654")},
	{name: "Mega Constructions", kind: "partnership", registrationNumber: s("REG567890"), pan: s("MEGPC7890J")},
}

var properties = []propertyRow{
	{"123 Main Street, Phase 1", "Mumbai", "Maharashtra", "400001", "commercial", 0},
	{"Green Valley Apartments, B-101", "Pune", "Maharashtra", "411001", "residential", 2},
	{"Tech Park Tower 3, Floor 12", "Bangalore", "Karnataka", "560001", "commercial", 1},
	{"Plot No. 45, Industrial Area", "Gurgaon", "Haryana", "122001", "industrial", 3},
	{"Villa 789, Palm Beach Road", "Mumbai", "Maharashtra", "400001", "residential", 4},
}

var documents = []documentRow{
	{0, 0, "sale_deed", "https://example.com/docs/deed1.pdf", "2024-03-15"},
	{1, 2, "mortgage_agreement", "https://example.com/docs/mortgage1.pdf", "2024-01-20"},
	{2, 3, "land_record", "https://example.com/docs/land1.pdf", "2022-11-05"},
	{3, 1, "sale_deed", "https://example.com/docs/deed2.pdf", "2023-08-12"},
	{4, 4, "noc", "https://example.com/docs/noc1.pdf", "2024-02-28"},
}

var transactions = []transactionRow{
	{0, 0, "sale", "50000000.00", "2024-03-15"},
	{1, 2, "mortgage", "8000000.00", "2024-01-20"},
	{2, 3, "lease", "120000.00", "2022-11-05"},
	{3, 1, "sale", "75000000.00", "2023-08-12"},
	{4, 4, "mortgage", "15000000.00", "2024-02-28"},
}

var ruralProperties = []landRow{
	{"Agricultural", "Khasra 112 Farmland", "Irrigated plot under canal command", "Survey No. 112", "Shirur", "Maharashtra", "Ramesh Patil", "2023-06-10"},
	{"Homestead", "Abadi Plot 7", "Village residential plot", "Ward 3", "Kalyanpur", "Uttar Pradesh", "Sita Devi", "2022-12-01"},
}

var urbanProperties = []landRow{
	{"Residential", "Sea View Flat 1402", "3 BHK apartment", "Tower B, Worli", "Mumbai", "Maharashtra", "Anita Rao", "2024-04-18T09:30:00Z"},
	{"Commercial", "Shop G-12", "Ground floor retail unit", "MG Road Arcade", "Bangalore", "Karnataka", "Sunrise Developers Pvt. Ltd.", "2023-10-02"},
}
