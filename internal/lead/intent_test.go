package lead

import "testing"

func TestIsContactIntent(t *testing.T) {
	positives := []string{
		"Je veux visiter une propriété",
		"On peut planifier une visite ?",
		"je voudrais un rendez-vous",
		"rdv possible cette semaine?",
		"Pouvez-vous me rappeler ?",
		"RAPPELEZ-MOI SVP",
		"comment vous contacter ?",
		"êtes-vous disponible demain ?",
		"je suis intéressé par le duplex",
		"je suis interessé",
		"I'm interested in the condo",
		"can you call me tomorrow",
		"I'd like to book a visit",
		"is the broker available?",
	}
	for _, msg := range positives {
		if !IsContactIntent(msg) {
			t.Errorf("expected contact intent for %q", msg)
		}
	}

	negatives := []string{
		"Bonjour",
		"Quels quartiers couvrez-vous ?",
		"Combien vaut ma maison ?",
		"514-555-1234, marc@example.com",
		"Marc Dubois",
		"",
		"   ",
	}
	for _, msg := range negatives {
		if IsContactIntent(msg) {
			t.Errorf("expected no contact intent for %q", msg)
		}
	}
}
