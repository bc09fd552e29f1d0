package fastbill

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// QueryOptions restrict the result set of a get operation.
type QueryOptions struct {
	// Filter is passed through to FastBill, e.g. {"CUSTOMER_ID": 12}.
	Filter map[string]any
	// Limit caps the result set. Zero leaves it unset.
	Limit int
	// Offset skips results. Zero leaves it unset.
	Offset int
}

// Customer is the request body for customer create and update.
// Map bodies with FastBill's upper-case keys are accepted as well.
type Customer struct {
	CustomerNumber string `json:"CUSTOMER_NUMBER,omitempty" yaml:"customer_number,omitempty"`
	CustomerType   string `json:"CUSTOMER_TYPE,omitempty"   yaml:"customer_type,omitempty"`
	Organization   string `json:"ORGANIZATION,omitempty"    yaml:"organization,omitempty"`
	Salutation     string `json:"SALUTATION,omitempty"      yaml:"salutation,omitempty"`
	FirstName      string `json:"FIRST_NAME,omitempty"      yaml:"first_name,omitempty"`
	LastName       string `json:"LAST_NAME,omitempty"       yaml:"last_name,omitempty"`
	Address        string `json:"ADDRESS,omitempty"         yaml:"address,omitempty"`
	ZipCode        string `json:"ZIPCODE,omitempty"         yaml:"zipcode,omitempty"`
	City           string `json:"CITY,omitempty"            yaml:"city,omitempty"`
	CountryCode    string `json:"COUNTRY_CODE,omitempty"    yaml:"country_code,omitempty"`
	Email          string `json:"EMAIL,omitempty"           yaml:"email,omitempty"`
	Phone          string `json:"PHONE,omitempty"           yaml:"phone,omitempty"`
	PaymentType    int    `json:"PAYMENT_TYPE,omitempty"    yaml:"payment_type,omitempty"`
	CurrencyCode   string `json:"CURRENCY_CODE,omitempty"   yaml:"currency_code,omitempty"`
}

// Invoice is the request body for invoice create and update.
type Invoice struct {
	CustomerID          int64         `json:"CUSTOMER_ID,omitempty"            yaml:"customer_id,omitempty"`
	CustomerCostCenter  int64         `json:"CUSTOMER_COSTCENTER_ID,omitempty" yaml:"customer_costcenter_id,omitempty"`
	CurrencyCode        string        `json:"CURRENCY_CODE,omitempty"          yaml:"currency_code,omitempty"`
	TemplateID          int64         `json:"TEMPLATE_ID,omitempty"            yaml:"template_id,omitempty"`
	IntroText           string        `json:"INTROTEXT,omitempty"              yaml:"introtext,omitempty"`
	InvoiceTitle        string        `json:"INVOICE_TITLE,omitempty"          yaml:"invoice_title,omitempty"`
	InvoiceDate         string        `json:"INVOICE_DATE,omitempty"           yaml:"invoice_date,omitempty"`
	DeliveryDate        string        `json:"DELIVERY_DATE,omitempty"          yaml:"delivery_date,omitempty"`
	CashDiscountPercent int           `json:"CASH_DISCOUNT_PERCENT,omitempty"  yaml:"cash_discount_percent,omitempty"`
	CashDiscountDays    int           `json:"CASH_DISCOUNT_DAYS,omitempty"     yaml:"cash_discount_days,omitempty"`
	EUDelivery          int           `json:"EU_DELIVERY,omitempty"            yaml:"eu_delivery,omitempty"`
	Items               []InvoiceItem `json:"ITEMS,omitempty"                  yaml:"items,omitempty"`
}

// InvoiceItem is a single invoice line.
type InvoiceItem struct {
	ArticleNumber string          `json:"ARTICLE_NUMBER,omitempty" yaml:"article_number,omitempty"`
	Description   string          `json:"DESCRIPTION"              yaml:"description"`
	Quantity      float64         `json:"QUANTITY,omitempty"       yaml:"quantity,omitempty"`
	UnitPrice     decimal.Decimal `json:"UNIT_PRICE"               yaml:"unit_price"`
	VATPercent    decimal.Decimal `json:"VAT_PERCENT"              yaml:"vat_percent"`
	IsGross       int             `json:"IS_GROSS,omitempty"       yaml:"is_gross,omitempty"`
	SortOrder     int             `json:"SORT_ORDER,omitempty"     yaml:"sort_order,omitempty"`
}

// Project is the request body for project create and update.
type Project struct {
	ProjectName        string          `json:"PROJECT_NAME,omitempty"           yaml:"project_name,omitempty"`
	ProjectNumber      string          `json:"PROJECT_NUMBER,omitempty"         yaml:"project_number,omitempty"`
	CustomerID         int64           `json:"CUSTOMER_ID,omitempty"            yaml:"customer_id,omitempty"`
	CustomerCostCenter int64           `json:"CUSTOMER_COSTCENTER_ID,omitempty" yaml:"customer_costcenter_id,omitempty"`
	HourPrice          decimal.Decimal `json:"HOUR_PRICE,omitzero"              yaml:"hour_price,omitempty"`
	StartDate          string          `json:"START_DATE,omitempty"             yaml:"start_date,omitempty"`
	EndDate            string          `json:"END_DATE,omitempty"               yaml:"end_date,omitempty"`
	Budget             decimal.Decimal `json:"BUDGET,omitzero"                  yaml:"budget,omitempty"`
}

// EmailMessage is the message sent by invoice send-by-email. Map messages
// use the same lower-case keys; the client maps them to FastBill's
// RECIPIENT, SUBJECT, MESSAGE and RECEIPT_CONFIRMATION.
type EmailMessage struct {
	Recipient           *Recipient `json:"recipient,omitempty"            yaml:"recipient,omitempty"`
	Subject             string     `json:"subject,omitempty"              yaml:"subject,omitempty"`
	Text                string     `json:"text,omitempty"                 yaml:"text,omitempty"`
	ReceiptConfirmation int        `json:"receipt_confirmation,omitempty" yaml:"receipt_confirmation,omitempty"`
}

// Recipient addresses an EmailMessage. To is required.
type Recipient struct {
	To  string `json:"to,omitempty"  yaml:"to,omitempty"`
	Cc  string `json:"cc,omitempty"  yaml:"cc,omitempty"`
	Bcc string `json:"bcc,omitempty" yaml:"bcc,omitempty"`
}

// Record is a single resource returned by a get operation. FastBill encodes
// most scalar fields as strings, so the accessors accept both forms.
type Record map[string]any

// String returns the field as a string, or "" when absent.
func (r Record) String(key string) string {
	value, ok := r[key]
	if !ok || value == nil {
		return ""
	}

	switch typed := value.(type) {
	case string:
		return typed
	case json.Number:
		return typed.String()
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	default:
		return fmt.Sprint(typed)
	}
}

// Int64 returns the field as an integer.
func (r Record) Int64(key string) (int64, bool) {
	raw := r.String(key)
	if raw == "" {
		return 0, false
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}

	return value, true
}

// Decimal returns the field as a decimal amount, e.g. TOTAL or VAT_TOTAL.
func (r Record) Decimal(key string) (decimal.Decimal, error) {
	raw := r.String(key)
	if raw == "" {
		return decimal.Zero, nil
	}

	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing %s as decimal: %w", key, err)
	}

	return value, nil
}

// ID is a FastBill identifier. It decodes from both JSON numbers and numeric
// strings.
type ID int64

// UnmarshalJSON implements json.Unmarshaler.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = 0

		return nil
	}

	raw := string(bytes.Trim(data, `"`))
	if raw == "" {
		*id = 0

		return nil
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("parsing id %q: %w", raw, err)
	}

	*id = ID(value)

	return nil
}
