package services

import (
	"fmt"

	"lead-intake/models"
)

// NewLeadEmail builds the subject and HTML body for the operator notification
// sent after a lead is registered.
func NewLeadEmail(lead *models.Lead) (subject, body string) {
	subject = fmt.Sprintf("Novo lead cadastrado: %s", lead.Name)

	body = fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background-color: #2196F3; color: white; padding: 20px; text-align: center; border-radius: 5px; }
        .content { background-color: #f9f9f9; padding: 20px; margin-top: 20px; border-radius: 5px; }
        .lead-info { background-color: #e3f2fd; padding: 15px; margin: 15px 0; border-left: 4px solid #2196F3; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header"><h2>Novo Lead</h2></div>
        <div class="content">
            <p>Um novo lead foi cadastrado no sistema.</p>
            <div class="lead-info">
                <p><strong>Nome:</strong> %s</p>
                <p><strong>CNPJ:</strong> %s</p>
                <p><strong>Email:</strong> %s</p>
            </div>
        </div>
    </div>
</body>
</html>
	`, lead.Name, lead.CNPJ, lead.Email)

	return subject, body
}
