package i18n

// UI strings served alongside catalog data so the storefront renders labels in
// the active language. Keys mirror the sections of the public site.
var translationsPT = map[string]string{
	"catalog.title":          "Catálogo de Produtos",
	"catalog.subtitle":       "Explore nossa linha completa de produtos",
	"catalog.search":         "Buscar produtos...",
	"catalog.categories":     "Categorias",
	"catalog.back":           "Voltar",
	"catalog.info":           "Info:",
	"catalog.quantity":       "Quantidade:",
	"catalog.qty":            "Qtd:",
	"catalog.barcode":        "Código de barras:",
	"catalog.in":             "em",
	"catalog.for":            "para",
	"catalog.noProducts":     "Nenhum produto encontrado",
	"catalog.noProducts.desc": "Tente ajustar sua busca ou filtro de categoria",
	"catalog.variations.available": "variações disponíveis",
	"category.all":           "Todos os Produtos",
	"category.all.desc":      "Visualize todos os produtos disponíveis",
	"category.uncategorized": "Sem Categoria",
	"products.promotion":     "Promoção",
	"nav.home":               "Início",
	"nav.about":              "Sobre Nós",
	"nav.catalog":            "Catálogo",
	"contact.title":          "Fale Conosco",
}

var translationsES = map[string]string{
	"catalog.title":          "Catálogo de Productos",
	"catalog.subtitle":       "Explora nuestra línea completa de productos",
	"catalog.search":         "Buscar productos...",
	"catalog.categories":     "Categorías",
	"catalog.back":           "Volver",
	"catalog.info":           "Info:",
	"catalog.quantity":       "Cantidad:",
	"catalog.qty":            "Cant:",
	"catalog.barcode":        "Código de barras:",
	"catalog.in":             "en",
	"catalog.for":            "para",
	"catalog.noProducts":     "No se encontraron productos",
	"catalog.noProducts.desc": "Intenta ajustar tu búsqueda o filtro de categoría",
	"catalog.variations.available": "variaciones disponibles",
	"category.all":           "Todos los Productos",
	"category.all.desc":      "Visualiza todos los productos disponibles",
	"category.uncategorized": "Sin Categoría",
	"products.promotion":     "Promoción",
	"nav.home":               "Inicio",
	"nav.about":              "Sobre Nosotros",
	"nav.catalog":            "Catálogo",
	"contact.title":          "Contáctanos",
}
