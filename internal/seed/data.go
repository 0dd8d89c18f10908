package seed

import (
	"fosfenos/internal/domain/models"
	"fosfenos/internal/transport/http/dto"
)

func strPtr(s string) *string { return &s }

var contents = []dto.CreateChildContentRequest{
	{
		Title:       "El Libro de Lila",
		VideoURL:    "/videos/lila-preview.mp4",
		PosterImage: "/images/content/lila-poster.jpg",
		Synopsis: "Lila es el personaje de un libro que repentinamente queda fuera de su mundo de papel y atrapada en otro al que no pertenece. " +
			"Es así como inicia esta aventura donde Lila entenderá que solo Ramón puede salvarla, aunque ya no es el mismo de antes, " +
			"ha crecido y no solamente ha dejado de leer sino de creer en la fantasía.\n\n" +
			"Es entonces cuando Lila y su amiga Manuela, tendrán que arreglárselas para convencerlo de emprender un arriesgado viaje. " +
			"En esta aventura por mundos mágicos, los niños descubrirán el real valor de la amistad y el poder de la fantasía.",
		Order: 1,
		TechnicalInfo: &dto.TechnicalInfoInput{
			Formato:             "Largometraje animado",
			Duracion:            "76 min",
			Genero:              "Aventura / Fantasía",
			Publico:             "Familiar",
			Estado:              "Finalizado",
			EmpresaProductora:   "Fosfenos Media",
			PaisProductora:      "Colombia",
			EmpresaCoproductora: strPtr("Palermo Estudio"),
			PaisCoproductora:    strPtr("Uruguay"),
		},
		Awards: []dto.AwardInput{
			{Title: "Mejor Película Selección Programa", Category: "Festival Internacional de Entretenimiento", Year: 2018, Country: "Colombia", Status: "GANADOR", Festival: "Cine Todo", Order: 0},
			{Title: "Mejor Largometraje Fangente", Category: "Festival de Animación", Year: 2018, Country: "Chile", Status: "GANADOR", Festival: "Ganador", Order: 1},
			{Title: "Mejor Película Animada", Category: "Jurados Infantil", Year: 2019, Country: "Valencia", Status: "GANADOR", Festival: "Cinema Jove", Order: 2},
			{Title: "Mejor Película Animada", Category: "Festival Internacional", Year: 2019, Country: "Cuba", Status: "GANADOR", Festival: "Centroamericano", Order: 3},
			{Title: "Mejor Largometraje Animado de Animación", Category: "Festival de Animación", Year: 2018, Country: "Caracas", Status: "GANADOR", Festival: "Anima Caracas", Order: 4},
			{Title: "Premio del Público", Category: "Festival Internacional de Animación", Year: 2019, Country: "Perú", Status: "GANADOR", Festival: "Lima 2019", Order: 5},
			{Title: "Mejor Guión", Category: "Mejor Actor", Year: 2018, Country: "Colombia", Status: "NOMINACION", Festival: "Cine Colombia", Order: 6},
			{Title: "Mejor Película Animada", Category: "Primeros Visitados", Year: 2019, Country: "México", Status: "NOMINACION", Festival: "Festival Internacional", Order: 7},
			{Title: "Mejor Desarrollo Visual", Category: "Gráficos Gobierno de Animación", Year: 2019, Country: "España", Status: "NOMINACION", Festival: "Desarrolla Europa", Order: 8},
			{Title: "Mención de Honor", Category: "Internacional de Cine de Ejercicio", Year: 2018, Country: "Chile", Status: "MENCION", Festival: "Ficvi", Order: 9},
		},
		Platforms: []dto.PlatformInput{
			{Name: "Movies", URL: "#movies", Icon: "🎬", Order: 0},
			{Name: "Amazon Prime", URL: "#amazon", Icon: "📺", Order: 1},
		},
		AdditionalInfo: &dto.AdditionalInfoInput{
			Pressbook: strPtr("/downloads/lila-pressbook.pdf"),
			Website:   strPtr("https://www.ellibrodelila.com"),
			Facebook:  strPtr("/ElLibroDeLila"),
			Instagram: strPtr("/ElLibroDeLila"),
		},
	},
	{
		Title:       "Guillermina y Candelario",
		VideoURL:    "/videos/guillermina-preview.mp4",
		PosterImage: "/images/content/guillermina-poster.jpg",
		Synopsis: "Guillermina y Candelario, es un proyecto pionero en su género en Colombia, inspirado en personajes afrodescendientes " +
			"y escenarios del Pacífico colombiano, que lleva a las distintas plataformas el exotismo natural y la alegría de los habitantes " +
			"de esa región, mientras se recrean situaciones y vivencias del maravilloso universo infantil.\n\n" +
			"Guillermina y Candelario son un par de traviesos e ingeniosos hermanos que viven en una hermosa playa y que con su capacidad " +
			"de soñar y fantasear, transforman cada día en una increíble aventura en compañía de sus abuelos.",
		Order: 2,
		TechnicalInfo: &dto.TechnicalInfoInput{
			Formato:             "Serie animada de TV",
			Duracion:            "6 temporadas",
			Genero:              "Aventura / Fantasía",
			Publico:             "Familiar",
			Estado:              "6 temporadas finalizadas",
			EmpresaProductora:   "Fosfenos Media",
			PaisProductora:      "Colombia",
			EmpresaCoproductora: strPtr("Señal Colombia"),
			PaisCoproductora:    strPtr("Colombia"),
		},
		Platforms: []dto.PlatformInput{
			{Name: "Señal Colombia", URL: "#senalcolombia", Icon: "📺", Order: 0},
		},
	},
	{
		Title:       "El pescador de estrellas",
		VideoURL:    "/videos/pescador-preview.mp4",
		PosterImage: "/images/content/pescador-poster.jpg",
		Synopsis: "Segundo es un chico de 11 años que animado por Máximo, su inseparable cómplice de aventuras, aprovecha un juego que hacen " +
			"en la escuela para convertirse en el amigo secreto de Juana María y enamorarla con un hermoso regalo; al final de la historia " +
			"la realidad se confunde con la fantasía, haciendo que Segundo termine viviendo el mágico amor de una leyenda de estrellas contada por un abuelo.",
		Order: 3,
		TechnicalInfo: &dto.TechnicalInfoInput{
			Formato:           "Cortometraje",
			Duracion:          "12 min",
			Genero:            "Aventura / Fantasía",
			Publico:           "Familiar",
			Estado:            "Finalizado",
			EmpresaProductora: "Fosfenos Media",
			PaisProductora:    "Colombia",
		},
	},
}

var team = []struct{ nombre, cargo string }{
	{"Marcela Rincón", "Directora"},
	{"Maritza Rincón", "Productora"},
	{"Tatiana Espitia", "Diseño de producción"},
	{"Andrés López", "Director de animación / Animador"},
	{"Monica Mondragón", "Guionista"},
	{"Neyber Lenis", "Director de producción"},
	{"Diogenes Mendoza", "Director de animación / Animador"},
	{"Ulises de Jesús Ramos", "Director de animación / Animador"},
	{"Andrea Serna", "Guionista"},
	{"Alejandra Beltrán", "Diseñadora de arte"},
	{"Stephany Vargas", "Directora de producción"},
	{"David Patiño", "Director de composición digital"},
	{"Vladimir Pérez", "Guionista"},
	{"Andrew Peñaranda", "Director de animación / Animador"},
	{"Eliana de la Pava", "Coordinadora de producción"},
}

const defaultTeamImage = "/images/team/default.jpg"

var services = []struct {
	title, description, icon, gradient string
	features                           []string
}{
	{"Conceptualización", "Desarrollamos la idea central de tu proyecto, definiendo objetivos, audiencia y mensaje clave para crear una base sólida.", "Target", "from-purple-600 to-blue-600",
		[]string{"Análisis de mercado y audiencia", "Desarrollo de propuesta creativa", "Definición de objetivos", "Investigación y benchmarking"}},
	{"Desarrollo", "Convertimos conceptos en proyectos viables, estructurando la narrativa y planificando cada aspecto técnico y creativo.", "Zap", "from-blue-600 to-cyan-600",
		[]string{"Desarrollo de narrativa", "Planificación técnica", "Estructura del proyecto", "Análisis de viabilidad"}},
	{"Preproducción", "Preparamos meticulosamente cada detalle antes del rodaje, desde casting hasta locaciones y cronogramas.", "Camera", "from-cyan-600 to-teal-600",
		[]string{"Casting y selección de talento", "Scouting de locaciones", "Planificación de cronograma", "Preparación de equipos"}},
	{"Diseño de Producción", "Creamos la identidad visual del proyecto, definiendo estética, paleta de colores y elementos gráficos únicos.", "Palette", "from-teal-600 to-green-600",
		[]string{"Desarrollo de identidad visual", "Diseño de escenografía", "Paleta de colores", "Arte conceptual"}},
	{"Guionización", "Escribimos guiones cautivadores que conectan con la audiencia, equilibrando narrativa, diálogos y ritmo.", "PenTool", "from-green-600 to-yellow-600",
		[]string{"Escritura de guión técnico", "Desarrollo de personajes", "Estructura narrativa", "Adaptaciones y rewrites"}},
	{"Creación de Formatos", "Diseñamos formatos innovadores y escalables para diferentes plataformas y audiencias.", "Monitor", "from-yellow-600 to-orange-600",
		[]string{"Desarrollo de formatos originales", "Adaptación multiplataforma", "Biblias de producción", "Estrategias de distribución"}},
	{"Producción", "Ejecutamos el rodaje con equipos profesionales y tecnología de vanguardia para capturar cada momento perfectamente.", "Video", "from-orange-600 to-red-600",
		[]string{"Dirección y supervisión", "Manejo de equipos técnicos", "Coordinación de talento", "Control de calidad en tiempo real"}},
	{"Postproducción", "Damos vida al material grabado con edición profesional, efectos visuales, sonido y color de nivel cinematográfico.", "Sparkles", "from-red-600 to-pink-600",
		[]string{"Edición y montaje", "Efectos visuales y VFX", "Corrección de color", "Diseño sonoro y mezcla"}},
}

var brands = []struct{ name, image string }{
	{"Señal Colombia", "/images/brand/Señal_Colombia_logo.svg"},
	{"Telepacifico", "/images/brand/telepacifico.png"},
	{"Parquesoft", "/images/brand/Parquesoft.png"},
	{"ICESI", "/images/brand/icesi.png"},
	{"Antorcha", "/images/brand/antorcha light.png"},
	{"SESAME STREET", "/images/brand/Sesame_Street_logo.svg.png"},
	{"ABC", "/images/brand/ABC.webp"},
	{"Discovery Kids", "/images/brand/discoverykids.png"},
	{"Lulofilms", "/images/brand/Lulo.png"},
}

var siteConfig = []models.SiteConfig{
	{Key: "site_title", Value: "Fosfenos Media", Type: models.ConfigTypeText},
	{Key: "site_description", Value: "Somos una familia creativa con el profundo deseo de contar historias para el público infantil.", Type: models.ConfigTypeText},
	{Key: "contact_email", Value: "info@fosfenosmedia.com", Type: models.ConfigTypeText},
	{Key: "hero_title", Value: "Somos una familia creativa", Type: models.ConfigTypeText},
	{Key: "hero_description", Value: "Con el profundo deseo de contar historias para el público infantil. Desde hace 15 años venimos produciendo contenidos culturales y educativos.", Type: models.ConfigTypeText},
}
