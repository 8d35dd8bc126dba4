// Package content is the bilingual copy of the landing page.
package content

type Language string

const (
	Spanish Language = "es"
	English Language = "en"

	Default = Spanish
)

// Parse maps a language tag to a Language. ok is false for unknown tags.
func Parse(tag string) (Language, bool) {
	switch Language(tag) {
	case "":
		return Default, true
	case Spanish, English:
		return Language(tag), true
	}
	return Default, false
}

func (l Language) Toggle() Language {
	if l == Spanish {
		return English
	}
	return Spanish
}

type Nav struct {
	Home, About, Features, Card, FAQ, CTA string
}

type Hero struct {
	Tagline      string
	TitleLine1   string
	TitleLine2   string
	Description  string
	CTAPrimary   string
	CTASecondary string
	Trust        string
}

type FeatureCard struct {
	Title string
	Desc  string
}

type Features struct {
	Title    string
	Subtitle string
	Cards    []FeatureCard
}

type CardSection struct {
	Title    string
	Subtitle string
	Desc     string
	List     []string
	CTA      string
}

type FAQItem struct {
	Question string
	Answer   string
}

type FAQ struct {
	Title     string
	Subtitle  string
	Items     []FAQItem
	CTA       string
	CTAButton string
}

type Content struct {
	Nav         Nav
	Hero        Hero
	Features    Features
	CardSection CardSection
	FAQ         FAQ
	Footer      string
}

// For returns the copy for lang, falling back to the default language.
func For(lang Language) Content {
	if c, ok := dictionary[lang]; ok {
		return c
	}
	return dictionary[Default]
}

var dictionary = map[Language]Content{
	Spanish: {
		Nav: Nav{Home: "Inicio", About: "Nosotros", Features: "Beneficios", Card: "Tarjeta", FAQ: "Ayuda", CTA: "Obtener App"},
		Hero: Hero{
			Tagline:      "TU DINERO, TUS REGLAS",
			TitleLine1:   "EL FUTURO DE",
			TitleLine2:   "TUS FINANZAS",
			Description:  "Diseñada para latinos que triunfan. Abre tu cuenta en EE. UU. solo con tu pasaporte. Sin SSN, sin comisiones sorpresa y con el control total de tu esfuerzo.",
			CTAPrimary:   "Abrir Cuenta Gratis",
			CTASecondary: "Cómo funciona",
			Trust:        "Más de 1M de latinos confían en nosotros",
		},
		Features: Features{
			Title:    "MÁS QUE UN BANCO, TU ALIADO",
			Subtitle: "POTENCIA TU ECONOMÍA",
			Cards: []FeatureCard{
				{Title: "Tu pago llega antes", Desc: "Cobra tu sueldo hasta 2 días antes. Tu dinero disponible cuando realmente lo necesitas."},
				{Title: "Conecta con casa", Desc: "Envía dinero a Latinoamérica al instante y con la mejor tasa de cambio del mercado."},
				{Title: "Libertad financiera", Desc: "Una tarjeta Visa aceptada en todo el mundo. Compra en línea o en tiendas sin trabas."},
			},
		},
		CardSection: CardSection{
			Subtitle: "PODER EN TU BOLSILLO",
			Title:    "LA TARJETA QUE SIGUE TU RITMO",
			Desc:     "Maneja tus gastos con una cuenta y tarjeta de débito en EE. UU. Olvídate de los cargos por mantenimiento o saldos mínimos. Tú decides cómo usar tu plata.",
			List:     []string{"Aceptación global con respaldo Visa", "Cero comisiones ocultas por uso", "Congela y descongela desde la App"},
			CTA:      "Solicítala sin costo",
		},
		FAQ: FAQ{
			Title:    "PREGUNTAS FRECUENTES",
			Subtitle: "TE AYUDAMOS",
			Items: []FAQItem{
				{Question: "¿Por qué Blxck Pay es diferente?", Answer: "Porque entendemos lo que es empezar de cero. Somos la app financiera inclusiva, sin letra chica y en tu idioma. Te damos acceso bancario real en EE. UU. sin las barreras de los bancos tradicionales."},
				{Question: "¿De verdad no necesito SSN?", Answer: "Totalmente cierto. Puedes abrir tu cuenta usando solo tu pasaporte vigente o matrícula consular. Validamos tu identidad en minutos desde tu celular."},
				{Question: "¿Mi dinero está protegido?", Answer: "Seguridad total. Tu cuenta reside en un banco asociado asegurado por la FDIC (hasta $250,000) y la app está blindada con biometría y encriptación avanzada."},
				{Question: "¿Hay costos escondidos?", Answer: "Ninguno. Odiamos las comisiones fantasma tanto como tú. No cobramos por apertura, ni mensualidad, ni te exigimos mantener un saldo mínimo."},
				{Question: "¿Qué tanto puedo hacer con la App?", Answer: "Todo. Desde recibir tu nómina más rápido, pagar servicios, usar tu tarjeta física o virtual, hasta enviar remesas a tu familia en segundos."},
			},
			CTA:       "¿Te quedó alguna duda? Visita nuestro centro de ayuda.",
			CTAButton: "Ver más respuestas",
		},
		Footer: "© 2026 Blxck Pay. Todos los derechos reservados.",
	},
	English: {
		Nav: Nav{Home: "Home", About: "About", Features: "Benefits", Card: "Debit Card", FAQ: "Support", CTA: "Get the App"},
		Hero: Hero{
			Tagline:      "BANKING WITHOUT BORDERS",
			TitleLine1:   "YOUR MONEY,",
			TitleLine2:   "EVOLVED.",
			Description:  "The financial super-app built for the modern earner. Open a US bank account in minutes with just your Passport. No SSN required, zero hidden fees.",
			CTAPrimary:   "Start for Free",
			CTASecondary: "Watch Video",
			Trust:        "Trusted by 1M+ users nationwide",
		},
		Features: Features{
			Title:    "NEXT-GEN FINANCIAL TOOLS",
			Subtitle: "THE DIGITAL EDGE",
			Cards: []FeatureCard{
				{Title: "Get Paid Faster", Desc: "Access your paycheck up to 2 days early. Why wait for your own money?"},
				{Title: "Send Global, Instantly", Desc: "Cross-border transfers to 17+ countries in seconds, not days."},
				{Title: "Spend Anywhere", Desc: "A Visa debit card that works correctly everywhere. Online, offline, worldwide."},
			},
		},
		CardSection: CardSection{
			Subtitle: "YOUR PHYSICAL CASH",
			Title:    "THE CARD THAT KEEPS UP",
			Desc:     "Seamlessly manage your finances with a premium US checking account. No maintenance fees, no minimum balance requirements. Just total control.",
			List:     []string{"Worldwide Visa acceptance", "No hidden transaction fees", "Instantly freeze card in-app"},
			CTA:      "Get your Free Card",
		},
		FAQ: FAQ{
			Title:    "FREQUENTLY ASKED QUESTIONS",
			Subtitle: "WE GOT ANSWERS",
			Items: []FAQItem{
				{Question: "Why choose Blxck Pay?", Answer: "Because we are building the most inclusive financial platform. We give you access to a fully functional US bank account without the red tape of traditional institutions."},
				{Question: "Do I really not need an SSN?", Answer: "Correct. We accept international Passports and Consular IDs. Our identity verification technology allows you to open an account in minutes from your phone."},
				{Question: "Is it safe?", Answer: "Bank-level security. Your funds are held at an FDIC-insured partner bank (up to $250,000) and your app is protected by FaceID and advanced encryption."},
				{Question: "What about fees?", Answer: "We believe in transparency. No opening fees, no monthly maintenance fees, and absolutely no minimum balance requirements."},
				{Question: "What features are included?", Answer: "Everything you need: Early direct deposit, physical and virtual debit cards, bill pay, and instant international transfers."},
			},
			CTA:       "Have more questions? Check our Help Center.",
			CTAButton: "View more",
		},
		Footer: "© 2026 Blxck Pay. All rights reserved.",
	},
}
