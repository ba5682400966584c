package cmd

type Config struct {
	HTTPPort             string
	DBHost               string
	DBPort               string
	DBUser               string
	DBPassword           string
	DBName               string
	DBSslMode            string
	JWTSecret            string
	PaymentAPIKey        string
	PaymentWebhookSecret string
	PaymentBaseURL       string
	SMSAccountSID        string
	SMSAuthToken         string
	SMSFromNumber        string
	SMSBaseURL           string
}
