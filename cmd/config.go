package cmd

type Config struct {
	HTTPPort                     string
	DBHost                       string
	DBPort                       string
	DBUser                       string
	DBPassword                   string
	DBName                       string
	DBSslMode                    string
	NatsURL                      string
	OrderEventsSubject           string
	CardProcessorURL             string
	CardProcessorSecretKey       string
	MobileMoneyRecipient         string
	MobileMoneyAccount           string
	MobileMoneyDialCode          string
	RequirePaymentBeforeDelivery bool
}
