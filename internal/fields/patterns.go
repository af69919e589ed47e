package fields

import "regexp"

// decimal is the shared numeric sub-pattern: digits with optional thousands
// separators and an optional two-digit fraction.
const decimal = `(\d+(?:,\d{3})*(?:\.\d{2})?)`

// currencyPatterns is the ordered amount-extraction policy. Every pattern
// is applied and every numeric match collected; the extractor returns the
// maximum. The vocabulary is India-specific (₹, Rs., INR) on purpose.
var currencyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`₹\s*` + decimal),
	regexp.MustCompile(`(?i)Rs\.?\s*` + decimal),
	regexp.MustCompile(`(?i)INR\s*` + decimal),
	regexp.MustCompile(`(?i)` + decimal + `\s*rupees?`),
	regexp.MustCompile(decimal + `\s*₹`),
	regexp.MustCompile(`(?i)Amount[:\s]*₹?\s*` + decimal),
	regexp.MustCompile(`(?i)Total[:\s]*₹?\s*` + decimal),
	regexp.MustCompile(`(?i)Paid[:\s]*₹?\s*` + decimal),
	regexp.MustCompile(`(?i)Price[:\s]*₹?\s*` + decimal),
	regexp.MustCompile(`(?i)Cost[:\s]*₹?\s*` + decimal),
	regexp.MustCompile(`(?i)Value[:\s]*₹?\s*` + decimal),
	regexp.MustCompile(`(?i)Bill[:\s]*₹?\s*` + decimal),
	regexp.MustCompile(`(?i)Invoice[:\s]*₹?\s*` + decimal),
	regexp.MustCompile(`(?i)Order[:\s]*₹?\s*` + decimal),
	regexp.MustCompile(`(?i)Payment[:\s]*₹?\s*` + decimal),
	regexp.MustCompile(`(?i)Charges[:\s]*₹?\s*` + decimal),
	regexp.MustCompile(`(?i)Fees[:\s]*₹?\s*` + decimal),
	regexp.MustCompile(decimal + `\s*/-`),
	regexp.MustCompile(`(?i)` + decimal + `\s*INR`),
	regexp.MustCompile(`(?i)` + decimal + `\s*Rs`),
	regexp.MustCompile(`(?i)payment\s+of\s+Rs\.?\s*` + decimal),
	regexp.MustCompile(`(?i)fees\s+payment[:\s]*Rs?\.?\s*` + decimal),
	regexp.MustCompile(`(?i)charges\s+of\s+Rs\.?\s*` + decimal),
}

// labelVendorPatterns is vendor tier (a): label-anchored, first match of
// length in (3,100) wins.
var labelVendorPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)From[:\s]+([A-Za-z &.]+)`),
	regexp.MustCompile(`(?i)Vendor[:\s]+([A-Za-z &.]+)`),
	regexp.MustCompile(`(?i)Company[:\s]+([A-Za-z &.]+)`),
	regexp.MustCompile(`(?i)Merchant[:\s]+([A-Za-z &.]+)`),
	regexp.MustCompile(`(?i)Bill\s+To[:\s]+([A-Za-z &.]+)`),
	regexp.MustCompile(`(?i)Invoice\s+From[:\s]+([A-Za-z &.]+)`),
}

// forwardedVendorPatterns is vendor tier (b): heuristics for forwarded
// email subject lines. The known-vendor alternation is deliberately
// case-sensitive: those names show up upper-cased in subjects, and matching
// them inside ordinary mixed-case prose would shadow the bare-line tier.
var forwardedVendorPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:with|from|at)\s+([A-Za-z &.\-]+?)(?:\s+is\s+delivered|\s+order|\s+invoice|\s+confirmation)`),
	regexp.MustCompile(`(?i)(?:order|invoice|confirmation)\s+(?:for|with)\s+([A-Za-z &.\-]+?)(?:\s+order|\s+delivered|\s+confirmation)`),
	regexp.MustCompile(`(?i)([A-Za-z &.\-]+?)\s*-\s*(?:order|invoice|confirmation|delivered)`),
	regexp.MustCompile(`(KWA|AUSTIN\s+WOOD|ATOMBERG|DISTRICT|PHONEPE|MYNTRA|FLIPKART|AMAZON)`),
	regexp.MustCompile(`(?i)([A-Za-z &.\-]+?)\s*:\s*(?:payment|fees|charges)`),
}

var (
	vendorPrefixCleanup = regexp.MustCompile(`(?i)^(with|from|at|order|invoice|confirmation|for)\s+`)
	vendorSuffixCleanup = regexp.MustCompile(`(?i)\s+(is\s+delivered|order|invoice|confirmation|delivered)$`)
	bareCompanyLine     = regexp.MustCompile(`^[A-Za-z &.]+$`)
	containsDigit       = regexp.MustCompile(`\d`)
)

// datePatterns is the ordered date-extraction policy: numeric day-first,
// abbreviated and full month names, year-first numeric, then the
// label-anchored variants.
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`),
	regexp.MustCompile(`(?i)(\d{1,2}\s+(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+\d{2,4})`),
	regexp.MustCompile(`(?i)(\d{1,2}\s+(?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{2,4})`),
	regexp.MustCompile(`(\d{4}[/-]\d{1,2}[/-]\d{1,2})`),
	regexp.MustCompile(`(?i)(?:Date|Dated?)[:\s]*(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`),
	regexp.MustCompile(`(?i)(?:Date|Dated?)[:\s]*(\d{1,2}\s+(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+\d{2,4})`),
}

// invoiceNumberPatterns: ordered label-anchored identifiers, first match
// longer than 2 characters wins.
var invoiceNumberPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Invoice\s*#?\s*:?\s*([A-Z0-9\-]+)`),
	regexp.MustCompile(`(?i)Bill\s*#?\s*:?\s*([A-Z0-9\-]+)`),
	regexp.MustCompile(`(?i)Order\s*#?\s*:?\s*([A-Z0-9\-]+)`),
	regexp.MustCompile(`(?i)Receipt\s*#?\s*:?\s*([A-Z0-9\-]+)`),
	regexp.MustCompile(`(?i)Transaction\s*#?\s*:?\s*([A-Z0-9\-]+)`),
	regexp.MustCompile(`(?i)Ref\s*#?\s*:?\s*([A-Z0-9\-]+)`),
	regexp.MustCompile(`(?i)ID\s*:?\s*([A-Z0-9\-]+)`),
}

var (
	quantityProductLine = regexp.MustCompile(`(?i)(\d+)\s*x\s*([A-Za-z0-9 .\-]+?)\s*-\s*₹\s*` + decimal)
	bareProductLine     = regexp.MustCompile(`(?i)^([A-Za-z0-9 .\-]+?)\s*₹\s*` + decimal + `$`)
)

// summaryLineKeywords disqualify a "name ₹price" line from being a product:
// those lines are totals, not items.
var summaryLineKeywords = []string{"total", "subtotal", "gst", "tax", "shipping", "discount"}

var taxPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Tax[:\s]*₹?\s*` + decimal),
	regexp.MustCompile(`(?i)GST[:\s]*₹?\s*` + decimal),
	regexp.MustCompile(`(?i)CGST[:\s]*₹?\s*` + decimal),
	regexp.MustCompile(`(?i)SGST[:\s]*₹?\s*` + decimal),
	regexp.MustCompile(`(?i)IGST[:\s]*₹?\s*` + decimal),
	regexp.MustCompile(`(?i)VAT[:\s]*₹?\s*` + decimal),
	regexp.MustCompile(`(?i)Service\s+Tax[:\s]*₹?\s*` + decimal),
}

var shippingPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Shipping[:\s]*₹?\s*` + decimal),
	regexp.MustCompile(`(?i)Delivery[:\s]*₹?\s*` + decimal),
	regexp.MustCompile(`(?i)Freight[:\s]*₹?\s*` + decimal),
}

var discountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Discount[:\s]*₹?\s*` + decimal),
	regexp.MustCompile(`(?i)Off[:\s]*₹?\s*` + decimal),
	regexp.MustCompile(`(?i)Deduction[:\s]*₹?\s*` + decimal),
}

// paymentMethods is the fixed payment vocabulary, matched by substring in
// listed order. The order is policy: "cash" is checked before "cash on
// delivery", so a COD line reports Cash.
var paymentMethods = []string{
	"credit card", "debit card", "cash", "cheque", "bank transfer",
	"upi", "paytm", "phonepe", "google pay", "net banking",
	"wallet", "cod", "cash on delivery",
}

var warrantyPeriodPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+)\s*(?:year|yr|month|mo|day|d)\s*warranty`),
	regexp.MustCompile(`(?i)warranty\s+period[:\s]*(\d+)\s*(?:year|yr|month|mo|day|d)`),
	regexp.MustCompile(`(?i)warranty[:\s]*(\d+)\s*(?:year|yr|month|mo|day|d)`),
	regexp.MustCompile(`(?i)(\d+)\s*(?:year|yr|month|mo|day|d)\s*coverage`),
}

var productNamePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Product[:\s]+([A-Za-z0-9 .\-]+)`),
	regexp.MustCompile(`(?i)Item[:\s]+([A-Za-z0-9 .\-]+)`),
	regexp.MustCompile(`(?i)Model[:\s]+([A-Za-z0-9 .\-]+)`),
}

var warrantyTermsPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Terms[:\s]+([A-Za-z0-9 .,\-]+)`),
	regexp.MustCompile(`(?i)Conditions[:\s]+([A-Za-z0-9 .,\-]+)`),
	regexp.MustCompile(`(?i)Coverage[:\s]+([A-Za-z0-9 .,\-]+)`),
}

var (
	serialNumberPattern = regexp.MustCompile(`(?i)Serial\s*(?:No|Number)?\s*[.:#]?\s*([A-Z0-9\-]{4,})`)
	modelNumberPattern  = regexp.MustCompile(`(?i)Model\s*(?:No|Number)\s*[.:#]?\s*([A-Z0-9\-]{2,})`)
	emailPattern        = regexp.MustCompile(`\b[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}\b`)
	phonePattern        = regexp.MustCompile(`(?:\+91[\s\-]?)?[6-9]\d{9}\b`)
)

var registrationDatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:Registration|Purchase|Purchased?\s+on)\s*(?:Date)?[:\s]*(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`),
	regexp.MustCompile(`(?i)(?:Registration|Purchase|Purchased?\s+on)\s*(?:Date)?[:\s]*(\d{4}[/-]\d{1,2}[/-]\d{1,2})`),
	regexp.MustCompile(`(?i)(?:Registration|Purchase)\s*(?:Date)?[:\s]*(\d{1,2}\s+(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+\d{2,4})`),
}

var refundReasonPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Reason[:\s]+([A-Za-z0-9 .,\-]+)`),
	regexp.MustCompile(`(?i)Cause[:\s]+([A-Za-z0-9 .,\-]+)`),
	regexp.MustCompile(`(?i)Why[:\s]+([A-Za-z0-9 .,\-]+)`),
}

// refundMethods mirrors paymentMethods but without the cash-on-delivery
// entries, which make no sense for money flowing back.
var refundMethods = []string{
	"credit card", "debit card", "bank transfer", "upi", "paytm",
	"phonepe", "google pay", "cheque", "cash", "wallet",
}
