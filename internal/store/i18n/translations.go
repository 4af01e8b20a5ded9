package i18n

// translations holds the static, fully loaded locale trees. No interpolation
// or pluralization; values are plain display strings.
var translations = map[Language]map[string]interface{}{
	LanguageEN: {
		"nav": map[string]interface{}{
			"home":      "Home",
			"shop":      "Shop",
			"features":  "Features",
			"materials": "Materials",
			"buy_now":   "Buy Now",
			"admin":     "Admin",
			"login":     "Sign In",
			"logout":    "Sign Out",
		},
		"hero": map[string]interface{}{
			"title_1":        "Warmth",
			"title_2":        "Woven by Hand",
			"subtitle":       "Premium alpaca ponchos from the Andes",
			"description":    "Each piece is handwoven by artisans using traditional techniques passed down through generations.",
			"shop_now":       "Shop Now",
			"learn_more":     "Learn More",
			"badge_premium":  "Premium Alpaca",
			"badge_fast_dry": "Fast Drying",
		},
		"index": map[string]interface{}{
			"warm_refuge":       "A Warm Refuge",
			"hero_desc":         "Handwoven alpaca ponchos, made to last a lifetime.",
			"collection_btn":    "View Collection",
			"our_ponchos":       "Our Ponchos",
			"choose_favorite":   "Choose your favorite",
			"see_all":           "See All",
			"join_community":    "Join Our Community",
			"newsletter_desc":   "Subscribe for new arrivals and stories from the Andes.",
			"email_placeholder": "Your email address",
			"subscribe_btn":     "Subscribe",
		},
		"product": map[string]interface{}{
			"add_to_cart": "Add to Cart",
			"description": "Description",
			"details":     "Details",
			"measures":    "Measures",
		},
		"shop": map[string]interface{}{
			"collection":  "The Collection",
			"description": "Every poncho is one of a kind.",
		},
	},
	LanguageES: {
		"nav": map[string]interface{}{
			"home":      "Inicio",
			"shop":      "Tienda",
			"features":  "Características",
			"materials": "Materiales",
			"buy_now":   "Comprar Ahora",
			"admin":     "Admin",
			"login":     "Iniciar Sesión",
			"logout":    "Cerrar Sesión",
		},
		"hero": map[string]interface{}{
			"title_1":        "Calidez",
			"title_2":        "Tejida a Mano",
			"subtitle":       "Ponchos de alpaca premium de los Andes",
			"description":    "Cada pieza es tejida a mano por artesanos con técnicas tradicionales transmitidas por generaciones.",
			"shop_now":       "Comprar",
			"learn_more":     "Saber Más",
			"badge_premium":  "Alpaca Premium",
			"badge_fast_dry": "Secado Rápido",
		},
		"index": map[string]interface{}{
			"warm_refuge":       "Un Refugio Cálido",
			"hero_desc":         "Ponchos de alpaca tejidos a mano, hechos para durar toda la vida.",
			"collection_btn":    "Ver Colección",
			"our_ponchos":       "Nuestros Ponchos",
			"choose_favorite":   "Elige tu favorito",
			"see_all":           "Ver Todo",
			"join_community":    "Únete a Nuestra Comunidad",
			"newsletter_desc":   "Suscríbete para novedades e historias de los Andes.",
			"email_placeholder": "Tu correo electrónico",
			"subscribe_btn":     "Suscribirse",
		},
		"product": map[string]interface{}{
			"add_to_cart": "Agregar al Carrito",
			"description": "Descripción",
			"details":     "Detalles",
			"measures":    "Medidas",
		},
		"shop": map[string]interface{}{
			"collection":  "La Colección",
			"description": "Cada poncho es único.",
		},
	},
}
