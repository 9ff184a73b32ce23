package categorize

import "bankstmt/pdf2ledger/internal/models"

// DefaultRules returns the built-in rule list. Channel rules come
// first: inside a UPI/IMPS/NEFT/RTGS narration the payee fragment is
// more telling than the merchant tables, which expect card-style
// descriptions. The trailing channel rule buckets leftover transfers.
func DefaultRules() []models.CategoryRule {
	return []models.CategoryRule{
		{Category: "Food & Dining", Channel: true, Keywords: []string{"zomato", "swiggy", "food"}},
		{Category: "Entertainment", Channel: true, Keywords: []string{"netflix", "spotify", "amazon prime", "hotstar", "apple"}},
		{Category: "Investment", Channel: true, Keywords: []string{"zerodha", "groww", "angel", "broker"}},
		{Category: "Utilities", Channel: true, Keywords: []string{"electricity", "water", "gas", "broadband", "airtel", "jio", "recharge", "prepaid"}},
		{Category: "Insurance", Channel: true, Keywords: []string{"insurance", "lic", "policy"}},
		{Category: "Rent", Channel: true, Keywords: []string{"rent"}},
		{Category: "Credit Card Payment", Channel: true, Keywords: []string{"sbi card", "credit card", "cc payment", "sbicardsan"}},
		{Category: "Transport", Channel: true, Keywords: []string{"porter", "cab", "ola", "uber"}},
		{Category: "Medical", Channel: true, Keywords: []string{"medicine", "blood test", "hospital"}},
		{Category: "Transfer", Channel: true, Keywords: []string{"upi", "imps", "neft", "rtgs"}},

		{Category: "Food & Dining", Keywords: []string{"zomato", "swiggy", "food", "restaurant", "cafe", "pizza", "burger", "dominos", "starbucks", "taco", "barbeque", "mcdonalds", "kfc", "sweets"}},
		{Category: "Shopping Online", Keywords: []string{"amazon", "flipkart", "myntra", "ajio", "meesho"}},
		{Category: "Entertainment", Keywords: []string{"netflix", "spotify", "hotstar", "prime video", "youtube"}},
		{Category: "Fuel", Keywords: []string{"petrol", "diesel", "fuel", "petroleum", "bpcl", "iocl", "auto fills", "bharat petro", "service station"}},
		{Category: "Utilities", Keywords: []string{"airtel", "jio", "vodafone", "recharge", "electricity", "water", "gas", "broadband", "bill pay"}},
		{Category: "Medical", Keywords: []string{"hospital", "medical", "pharmacy", "chemist", "doctor", "health", "apollo", "fortis"}},
		{Category: "Travel", Keywords: []string{"uber", "ola", "rapido", "irctc", "makemytrip", "yatra", "airlines", "flight", "train", "cab", "travel"}},
		{Category: "Groceries", Keywords: []string{"grocery", "bigbasket", "blinkit", "zepto", "dmart", "supermarket", "grofers"}},
		{Category: "EMI/Loan", Keywords: []string{"emi", "loan"}},
		{Category: "Insurance", Keywords: []string{"insurance", "lic", "policy"}},
		{Category: "Payment/Refund", Keywords: []string{"payment received", "payment", "reversal", "refund", "repayment", "cashback"}},
		{Category: "Fees & Charges", Keywords: []string{"fee", "charge", "annual", "surcharge", "gst", "tax", "service tax", "sms", "alert"}},
		{Category: "Clothing", Keywords: []string{"apparel", "clothing", "fashion", "zara", "bata", "jockey", "levi", "h and m", "marks and spencer"}},
		{Category: "Salary", Keywords: []string{"salary"}},
		{Category: "Interest", Keywords: []string{"interest", "int.coll", "int.pd"}},
		{Category: "Cash", Keywords: []string{"atm", "cash"}},
		{Category: "Tax", Keywords: []string{"tds"}},
	}
}
