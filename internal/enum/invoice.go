package enum

// InvoiceStatus is the lifecycle state reported by the gateway
type InvoiceStatus string

const (
	StatusPending InvoiceStatus = "PENDING"
	StatusPaid    InvoiceStatus = "PAID"
	StatusSettled InvoiceStatus = "SETTLED"
	StatusExpired InvoiceStatus = "EXPIRED"
)

var invoiceStatuses = []InvoiceStatus{StatusPending, StatusPaid, StatusSettled, StatusExpired}

// InvoiceStatusValues returns all invoice statuses
func InvoiceStatusValues() []InvoiceStatus {
	return append([]InvoiceStatus(nil), invoiceStatuses...)
}

// ParseInvoiceStatus parses a wire value
func ParseInvoiceStatus(raw string) (InvoiceStatus, error) {
	return parse("invoice status", raw, invoiceStatuses)
}

func (s InvoiceStatus) String() string { return string(s) }

// IsValid reports whether s is a declared variant
func (s InvoiceStatus) IsValid() bool { return Contains(invoiceStatuses, s) }

// IsFinal reports whether no further transition can happen
func (s InvoiceStatus) IsFinal() bool {
	return s == StatusSettled || s == StatusExpired
}

// ClientType identifies the channel an invoice was created through
type ClientType string

const (
	ClientAPIGateway  ClientType = "API_GATEWAY"
	ClientDashboard   ClientType = "DASHBOARD"
	ClientIntegration ClientType = "INTEGRATION"
	ClientOnDemand    ClientType = "ON_DEMAND"
	ClientRecurring   ClientType = "RECURRING"
	ClientMobile      ClientType = "MOBILE"
)

var clientTypes = []ClientType{
	ClientAPIGateway,
	ClientDashboard,
	ClientIntegration,
	ClientOnDemand,
	ClientRecurring,
	ClientMobile,
}

// ClientTypeValues returns all client types
func ClientTypeValues() []ClientType {
	return append([]ClientType(nil), clientTypes...)
}

// ParseClientType parses a wire value
func ParseClientType(raw string) (ClientType, error) {
	return parse("client type", raw, clientTypes)
}

func (c ClientType) String() string { return string(c) }

// IsValid reports whether c is a declared variant
func (c ClientType) IsValid() bool { return Contains(clientTypes, c) }

// Locale is the language of the hosted invoice page
type Locale string

const (
	LocaleEnglish    Locale = "en"
	LocaleIndonesian Locale = "id"
)

var locales = []Locale{LocaleEnglish, LocaleIndonesian}

// DefaultLocale is used when an invoice carries no locale
func DefaultLocale() Locale { return LocaleEnglish }

// LocaleValues returns all locales
func LocaleValues() []Locale {
	return append([]Locale(nil), locales...)
}

// ParseLocale parses a wire value
func ParseLocale(raw string) (Locale, error) {
	return parse("locale", raw, locales)
}

func (l Locale) String() string { return string(l) }

// IsValid reports whether l is a declared variant
func (l Locale) IsValid() bool { return Contains(locales, l) }

// DisplayName returns the human name of the language
func (l Locale) DisplayName() string {
	switch l {
	case LocaleEnglish:
		return "English"
	case LocaleIndonesian:
		return "Indonesian"
	}
	return ""
}

// NotificationChannel is a medium the gateway can notify a customer on
type NotificationChannel string

const (
	ChannelWhatsApp NotificationChannel = "whatsapp"
	ChannelEmail    NotificationChannel = "email"
	ChannelViber    NotificationChannel = "viber"
	ChannelSMS      NotificationChannel = "sms"
)

var notificationChannels = []NotificationChannel{ChannelWhatsApp, ChannelEmail, ChannelViber, ChannelSMS}

// invoiceNotificationChannels are the channels accepted on invoices; sms is not
var invoiceNotificationChannels = []NotificationChannel{ChannelWhatsApp, ChannelEmail, ChannelViber}

// NotificationChannelValues returns all notification channels
func NotificationChannelValues() []NotificationChannel {
	return append([]NotificationChannel(nil), notificationChannels...)
}

// InvoiceNotificationChannels returns the channels an invoice may request
func InvoiceNotificationChannels() []NotificationChannel {
	return append([]NotificationChannel(nil), invoiceNotificationChannels...)
}

// ParseNotificationChannel parses a wire value
func ParseNotificationChannel(raw string) (NotificationChannel, error) {
	return parse("notification channel", raw, notificationChannels)
}

func (c NotificationChannel) String() string { return string(c) }

// IsValid reports whether c is a declared variant
func (c NotificationChannel) IsValid() bool { return Contains(notificationChannels, c) }

// NotificationType is an invoice event a customer can be notified about
type NotificationType string

const (
	NotifyInvoiceCreated  NotificationType = "invoice_created"
	NotifyInvoiceReminder NotificationType = "invoice_reminder"
	NotifyInvoicePaid     NotificationType = "invoice_paid"
)

var notificationTypes = []NotificationType{NotifyInvoiceCreated, NotifyInvoiceReminder, NotifyInvoicePaid}

// NotificationTypeValues returns all notification types
func NotificationTypeValues() []NotificationType {
	return append([]NotificationType(nil), notificationTypes...)
}

// ParseNotificationType parses a wire value
func ParseNotificationType(raw string) (NotificationType, error) {
	return parse("notification type", raw, notificationTypes)
}

func (t NotificationType) String() string { return string(t) }

// IsValid reports whether t is a declared variant
func (t NotificationType) IsValid() bool { return Contains(notificationTypes, t) }

// ReminderTimeUnit is the unit of an invoice reminder offset
type ReminderTimeUnit string

const (
	ReminderDays  ReminderTimeUnit = "days"
	ReminderHours ReminderTimeUnit = "hours"
)

var reminderTimeUnits = []ReminderTimeUnit{ReminderDays, ReminderHours}

// ReminderTimeUnitValues returns all reminder units
func ReminderTimeUnitValues() []ReminderTimeUnit {
	return append([]ReminderTimeUnit(nil), reminderTimeUnits...)
}

// ParseReminderTimeUnit parses a wire value
func ParseReminderTimeUnit(raw string) (ReminderTimeUnit, error) {
	return parse("reminder time unit", raw, reminderTimeUnits)
}

func (u ReminderTimeUnit) String() string { return string(u) }

// IsValid reports whether u is a declared variant
func (u ReminderTimeUnit) IsValid() bool { return Contains(reminderTimeUnits, u) }

// MaxValue is the largest reminder offset allowed for the unit
func (u ReminderTimeUnit) MaxValue() int {
	switch u {
	case ReminderDays:
		return 30
	case ReminderHours:
		return 24
	}
	return 0
}

// IsValidValue reports whether 1 <= n <= MaxValue()
func (u ReminderTimeUnit) IsValidValue(n int) bool {
	return n >= 1 && n <= u.MaxValue()
}

// QrisSource is the wallet or bank app that paid a QRIS invoice
type QrisSource string

const (
	QrisDANA      QrisSource = "DANA"
	QrisGoPay     QrisSource = "GOPAY"
	QrisLinkAja   QrisSource = "LINKAJA"
	QrisOVO       QrisSource = "OVO"
	QrisShopeePay QrisSource = "SHOPEEPAY"
	QrisJeniusPay QrisSource = "JENIUSPAY"
	QrisSakuku    QrisSource = "SAKUKU"
	QrisOther     QrisSource = "OTHER"
)

var qrisSources = []QrisSource{
	QrisDANA,
	QrisGoPay,
	QrisLinkAja,
	QrisOVO,
	QrisShopeePay,
	QrisJeniusPay,
	QrisSakuku,
	QrisOther,
}

// QrisSourceValues returns all QRIS sources
func QrisSourceValues() []QrisSource {
	return append([]QrisSource(nil), qrisSources...)
}

// ParseQrisSource parses a wire value
func ParseQrisSource(raw string) (QrisSource, error) {
	return parse("QRIS source", raw, qrisSources)
}

func (s QrisSource) String() string { return string(s) }

// IsValid reports whether s is a declared variant
func (s QrisSource) IsValid() bool { return Contains(qrisSources, s) }
