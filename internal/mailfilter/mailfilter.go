// Package mailfilter gates which incoming emails are worth parsing.
// Bank statements and promotional mail dominate a typical inbox and
// waste extraction work, so the calling layer screens subject, sender
// and body before handing anything to the parser.
package mailfilter

import "strings"

var statementKeywords = []string{
	"credit card statement", "card statement", "credit card",
	"statement", "bank statement", "credit card bill", "card bill",
}

var bankDomains = []string{
	"hdfcbank.com", "icicibank.com", "sbicard.com", "axisbank.com", "kotak.com",
}

// purchaseVendors are senders whose mail is usually a real transaction.
// Mail from them passes unless the subject itself is promotional.
var purchaseVendors = []string{
	"swiggy", "zomato", "amazon", "myntra", "flipkart", "cred",
	"uber", "ola", "bookmyshow", "paytm", "phonepe", "razorpay",
	"district", "ticketnew", "atomberg", "austin wood", "kwa",
}

var vendorPromoSubjects = []string{
	"newsletter", "update", "offers", "deals", "discount", "sale",
	"promotion", "subscription", "member", "unsubscribe",
}

// forwardedPurchaseKeywords rescue "Fwd:"/"Re:" subjects that mention a
// transaction: forwarding a delivery confirmation to the tracker inbox
// is the primary ingestion path.
var forwardedPurchaseKeywords = []string{
	"order", "delivered", "invoice", "confirmation", "purchase",
	"payment", "booking", "ticket", "warranty",
}

var promoSubjectKeywords = []string{
	"newsletter", "subscription", "member", "price drop", "price alert",
	"deals", "discount", "savings", "sale", "offer", "promotion",
	"festival", "tourism", "career", "job", "interview", "opportunity",
	"congratulations", "payment reminder", "payment failed",
	"your opinion matters", "feedback matters", "update profile",
	"one-time password", "insurance", "loan disbursed", "amortization",
	"service completed", "out for delivery", "shipment-tracking",
	"apply to jobs", "limited time", "live now",
}

var promoSenders = []string{
	"noreply", "no-reply", "customercare", "newsletter",
	"stackoverflow", "shiprocket", "agoda", "acko", "foundit",
	"techgig", "hirist", "indeed", "naukri", "sbilife", "wazirx",
	"facebook", "offers@", "alert@",
}

var promoBodyKeywords = []string{
	"unsubscribe", "marketing email", "promotional", "sponsored",
	"advertisement", "exclusive offer", "limited time", "flash sale",
	"discount code", "coupon", "voucher", "buy now", "shop now",
	"last chance", "ending soon", "expires soon", "manage preferences",
	"email preferences", "marketing communications",
}

// IsCreditCardStatement reports whether the email looks like a bank or
// card statement, which needs a password-protected-PDF flow this parser
// does not provide.
func IsCreditCardStatement(subject, from string) bool {
	subject = strings.ToLower(subject)
	from = strings.ToLower(from)
	for _, kw := range statementKeywords {
		if strings.Contains(subject, kw) || strings.Contains(from, kw) {
			return true
		}
	}
	for _, domain := range bankDomains {
		if strings.Contains(from, domain) {
			return true
		}
	}
	return false
}

// IsPromotionalEmail reports whether the email is marketing noise rather
// than a transaction worth extracting. Known purchase vendors get the
// benefit of the doubt, forwarded transactional subjects always pass,
// and everything else is screened against subject, sender and body
// vocabularies.
func IsPromotionalEmail(subject, from, body string) bool {
	subject = strings.ToLower(subject)
	from = strings.ToLower(from)
	body = strings.ToLower(body)

	for _, vendor := range purchaseVendors {
		if !strings.Contains(from, vendor) {
			continue
		}
		for _, kw := range vendorPromoSubjects {
			if strings.Contains(subject, kw) {
				return true
			}
		}
		return false
	}

	if strings.HasPrefix(subject, "fwd:") || strings.HasPrefix(subject, "re:") {
		for _, kw := range forwardedPurchaseKeywords {
			if strings.Contains(subject, kw) {
				return false
			}
		}
	}

	for _, kw := range promoSubjectKeywords {
		if strings.Contains(subject, kw) {
			return true
		}
	}
	for _, sender := range promoSenders {
		if strings.Contains(from, sender) {
			return true
		}
	}
	for _, kw := range promoBodyKeywords {
		if strings.Contains(body, kw) {
			return true
		}
	}
	return false
}
