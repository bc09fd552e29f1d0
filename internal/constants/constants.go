package constants

import "time"

// FastBill endpoint.
const (
	// DefaultEndpoint is the FastBill API URL all services are posted to.
	DefaultEndpoint = "https://my.fastbill.com/api/1.0/api.php"

	// ContentTypeJSON is sent as Content-Type on every request.
	ContentTypeJSON = "application/json"

	// DefaultUserAgent identifies the client.
	DefaultUserAgent = "fastbill-client-go"
)

// Service scopes. A service name is scope + operation, e.g. "customer.get".
const (
	ScopeCustomer = "customer."
	ScopeInvoice  = "invoice."
	ScopeProject  = "project."
	ScopeTemplate = "template."
)

// Service operations.
const (
	OpGet         = "get"
	OpCreate      = "create"
	OpUpdate      = "update"
	OpDelete      = "delete"
	OpComplete    = "complete"
	OpCancel      = "cancel"
	OpSign        = "sign"
	OpSetPaid     = "setpaid"
	OpSendByEmail = "sendbyemail"
)

// Response envelope keys.
const (
	FieldCustomers        = "CUSTOMERS"
	FieldCustomerID       = "CUSTOMER_ID"
	FieldInvoices         = "INVOICES"
	FieldInvoiceID        = "INVOICE_ID"
	FieldInvoiceNumber    = "INVOICE_NUMBER"
	FieldRemainingCredits = "REMAINING_CREDITS"
	FieldProjects         = "PROJECTS"
	FieldProjectID        = "PROJECT_ID"
	FieldTemplates        = "TEMPLATES"
	FieldItems            = "ITEMS"
	FieldPaidDate         = "PAID_DATE"
	FieldRecipient        = "RECIPIENT"
	FieldSubject          = "SUBJECT"
	FieldMessage          = "MESSAGE"
	FieldReceiptConfirm   = "RECEIPT_CONFIRMATION"
)

// Keys of the message passed to invoice send-by-email.
const (
	MessageRecipient           = "recipient"
	MessageRecipientTo         = "to"
	MessageSubject             = "subject"
	MessageText                = "text"
	MessageReceiptConfirmation = "receipt_confirmation"
)

// Error messages shared by every resource client.
const (
	// MsgInvalidRequest wraps every failure after a request was attempted.
	MsgInvalidRequest = "Invalid Request to Fastbill."

	// MsgUnparsableResponse is used when the envelope is not valid JSON.
	MsgUnparsableResponse = "Unable to parse response"

	// MsgCommunicationError is used for transport failures.
	MsgCommunicationError = "Communication error."
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the CLI timeout for a single FastBill call.
	DefaultHTTPTimeout = 30 * time.Second

	// DefaultRetryWaitMin is the minimum backoff when retries are enabled.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum backoff when retries are enabled.
	DefaultRetryWaitMax = 30 * time.Second

	// NATSConnectTimeout bounds the connection to the event broker.
	NATSConnectTimeout = 5 * time.Second
)

// Events.
const (
	// DefaultEventSubjectPrefix prefixes NATS subjects, e.g. "fastbill.invoice.complete".
	DefaultEventSubjectPrefix = "fastbill"
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// Format constants.
const (
	// FormatTable for table output format.
	FormatTable = "table"

	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"
)

// Command line arguments.
const (
	// IDArgumentCount is the argument count of commands taking a single id.
	IDArgumentCount = 1

	// DefaultListLimit is the default result limit for get commands.
	DefaultListLimit = 50
)
