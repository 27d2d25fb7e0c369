package utils

import (
	"fmt"
	"log"
	"os"

	"github.com/wneessen/go-mail"
)

// SendWelcomeEmail envoie l'e-mail de bienvenue après inscription
func SendWelcomeEmail(to, name string) error {
	msg := mail.NewMsg()

	if err := msg.From("hello@luvera.co"); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject("Bienvenue chez Luvera ✨")
	msg.SetBodyString(mail.TypeTextHTML, welcomeHTML(name))

	client, err := mail.NewClient(os.Getenv("SMTP_HOST"),
		mail.WithPort(587),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(os.Getenv("SMTP_USERNAME")),
		mail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	log.Println("📤 Envoi de l'e-mail de bienvenue à", to)
	return client.DialAndSend(msg)
}

func welcomeHTML(name string) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="fr">
<head>
	<meta charset="UTF-8">
	<title>Bienvenue chez Luvera</title>
</head>
<body style="font-family: Arial, sans-serif; background-color: #fdf8f3; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #b8860b;">Bienvenue chez Luvera, %s !</h2>
		<p>Votre compte est prêt. Faites notre quiz peau pour découvrir votre routine personnalisée,
		et profitez de -15%% sur chaque produit en abonnement.</p>
		<p style="margin-top: 20px;">
			<a href="https://luvera.co/quiz" style="background-color: #b8860b; color: white; padding: 10px 20px; border-radius: 5px; text-decoration: none;">
				Commencer le quiz
			</a>
		</p>
		<p style="color: #999; font-size: 12px; margin-top: 30px;">
			Luvera — Personalized skincare, naturally radiant skin.
		</p>
	</div>
</body>
</html>`, name)
}
