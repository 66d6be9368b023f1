package onboarding

// DefaultCatalog is the product's onboarding script. Prompts are the copy the
// chat bot shows, one question per profile field; optional questions say so in
// their copy but optionality is carried by the Required flag, never parsed
// back out of the text.
func DefaultCatalog() Catalog {
	return MustCatalog([]Question{
		{
			ID:          "q_first_name",
			Field:       "first_name",
			Label:       "Prénom",
			Prompt:      "Pour commencer, quel est ton prénom ? 😊",
			Kind:        KindText,
			Placeholder: "Paul",
			Required:    true,
		},
		{
			ID:          "q_last_name",
			Field:       "last_name",
			Label:       "Nom",
			Prompt:      "Et ton nom de famille ?",
			Kind:        KindText,
			Placeholder: "Biya",
			Required:    true,
		},
		{
			ID:          "q_email",
			Field:       "email",
			Label:       "Email",
			Prompt:      "Quelle est ton adresse email ? 📧",
			Kind:        KindEmail,
			Placeholder: "paul@exemple.com",
			Required:    true,
			Tip:         "On l'utilise pour t'envoyer les offres qui matchent ton profil.",
		},
		{
			ID:          "q_phone",
			Field:       "phone",
			Label:       "Téléphone",
			Prompt:      "Ton numéro de téléphone ? 📱",
			Kind:        KindPhone,
			Placeholder: "+237 670000000",
			Required:    true,
		},
		{
			ID:          "q_location",
			Field:       "location",
			Label:       "Ville",
			Prompt:      "Dans quelle ville es-tu basé(e) ? 📍",
			Kind:        KindText,
			Placeholder: "Douala",
			Required:    true,
		},
		{
			ID:          "q_current_title",
			Field:       "current_title",
			Label:       "Poste actuel",
			Prompt:      "Quel est ton poste actuel (ou le dernier occupé) ? 💼",
			Kind:        KindText,
			Placeholder: "Développeur web",
			Required:    true,
		},
		{
			ID:          "q_years_experience",
			Field:       "years_experience",
			Label:       "Années d'expérience",
			Prompt:      "Combien d'années d'expérience as-tu ?",
			Kind:        KindNumber,
			Placeholder: "3",
			Required:    true,
		},
		{
			ID:       "q_education_level",
			Field:    "education_level",
			Label:    "Niveau d'études",
			Prompt:   "Quel est ton niveau d'études ? 🎓",
			Kind:     KindSelect,
			Options:  []string{"Bac", "Bac+2", "Bac+3 / Licence", "Bac+5 / Master", "Doctorat", "Autodidacte"},
			Required: true,
		},
		{
			ID:       "q_skills",
			Field:    "skills",
			Label:    "Compétences",
			Prompt:   "Quelles sont tes compétences principales ? Tu peux en choisir plusieurs 🛠️",
			Kind:     KindMultiSelect,
			Options:  []string{"React", "Node.js", "Python", "PHP", "Java", "Design", "Marketing", "Comptabilité", "Vente", "Gestion de projet"},
			Required: true,
			Tip:      "Plus ton profil est précis, meilleurs sont les matchs.",
		},
		{
			ID:        "q_languages",
			Field:     "languages",
			Label:     "Langues",
			Prompt:    "Quelles langues parles-tu ? (optionnel) 🗣️",
			Kind:      KindMultiSelect,
			Options:   []string{"Français", "Anglais", "Espagnol", "Allemand", "Autre"},
			Required:  false,
			Skippable: true,
		},
		{
			ID:       "q_job_type",
			Field:    "job_type",
			Label:    "Type de contrat",
			Prompt:   "Quel type de contrat recherches-tu ? 📋",
			Kind:     KindSelect,
			Options:  []string{"CDI", "CDD", "Stage", "Freelance", "Alternance"},
			Required: true,
		},
		{
			ID:       "q_remote_preference",
			Field:    "remote_preference",
			Label:    "Mode de travail",
			Prompt:   "Tu préfères travailler comment ?",
			Kind:     KindSelect,
			Options:  []string{"Sur site", "Hybride", "Télétravail complet"},
			Required: true,
		},
		{
			ID:        "q_preferred_locations",
			Field:     "preferred_locations",
			Label:     "Villes recherchées",
			Prompt:    "Dans quelles villes veux-tu travailler ? (optionnel) 🏙️",
			Kind:      KindMultiSelect,
			Options:   []string{"Douala", "Yaoundé", "Bafoussam", "Garoua", "Limbé", "Autre"},
			Required:  false,
			Skippable: true,
			DependsOn: &Dependency{Field: "remote_preference", AnyOf: []string{"Sur site", "Hybride"}},
		},
		{
			ID:          "q_min_salary",
			Field:       "min_salary",
			Label:       "Salaire minimum",
			Prompt:      "Quel est ton salaire mensuel minimum, en FCFA ? (optionnel) 💰",
			Kind:        KindNumber,
			Placeholder: "250000",
			Required:    false,
			Skippable:   true,
		},
		{
			ID:       "q_availability",
			Field:    "availability",
			Label:    "Disponibilité",
			Prompt:   "Quand peux-tu commencer ? ⏰",
			Kind:     KindSelect,
			Options:  []string{"Immédiatement", "Sous 1 mois", "Sous 3 mois", "Je regarde seulement"},
			Required: true,
		},
		{
			ID:          "q_linkedin_url",
			Field:       "linkedin_url",
			Label:       "LinkedIn",
			Prompt:      "Ton profil LinkedIn ? (optionnel) 🔗",
			Kind:        KindText,
			Placeholder: "https://linkedin.com/in/...",
			Required:    false,
			Skippable:   true,
		},
		{
			ID:          "q_portfolio_url",
			Field:       "portfolio_url",
			Label:       "Portfolio",
			Prompt:      "Un portfolio ou site perso à partager ? (optionnel)",
			Kind:        KindText,
			Placeholder: "https://...",
			Required:    false,
			Skippable:   true,
		},
		{
			ID:        "q_summary",
			Field:     "summary",
			Label:     "Présentation",
			Prompt:    "Pour finir, présente-toi en quelques phrases (optionnel) ✨",
			Kind:      KindLongText,
			Required:  false,
			Skippable: true,
			Tip:       "Ce texte sert de base à la génération de ton CV.",
		},
	})
}
