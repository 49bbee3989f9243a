package email

import "fmt"

func WelcomeTemplate(name, promoCode string) string {
	if name == "" {
		name = "cher client"
	}
	template := fmt.Sprintf(`
		<html>
        <body>
            <h2>Bienvenue chez YAMA+ !</h2>
            <p>Bonjour %s,</p>
            <p>Merci de votre inscription à notre newsletter.</p>
            <p>Votre code de bienvenue : <strong>%s</strong></p>
            <br>
            <p>À très bientôt,<br>L'équipe YAMA+</p>
        </body>
        </html>
		`, name, promoCode)
	return template
}

func SpinPrizeTemplate(name, prizeLabel, promoCode string) string {
	if name == "" {
		name = "cher client"
	}
	template := fmt.Sprintf(`
		<html>
        <body>
            <h2>Félicitations !</h2>
            <p>Bonjour %s,</p>
            <p>Vous avez gagné : <strong>%s</strong></p>
            <p>Votre code : <strong>%s</strong></p>
            <br>
            <p>À très bientôt,<br>L'équipe YAMA+</p>
        </body>
        </html>
		`, name, prizeLabel, promoCode)
	return template
}

func DocumentTemplate(partnerName, docLabel, docNumber string) string {
	template := fmt.Sprintf(`
		<html>
        <body>
            <p>Bonjour %s,</p>
            <p>Veuillez trouver ci-joint votre %s n° <strong>%s</strong>.</p>
            <br>
            <p>Cordialement,<br>L'équipe YAMA+</p>
        </body>
        </html>
		`, partnerName, docLabel, docNumber)
	return template
}

func OrderConfirmationTemplate(customerName, orderNumber string, total int64) string {
	template := fmt.Sprintf(`
		<html>
        <body>
            <h2>Commande confirmée</h2>
            <p>Bonjour %s,</p>
            <p>Votre commande <strong>%s</strong> d'un montant de %d FCFA a bien été enregistrée.</p>
            <br>
            <p>Merci de votre confiance,<br>L'équipe YAMA+</p>
        </body>
        </html>
		`, customerName, orderNumber, total)
	return template
}
