package site

// NavItem is one entry of the main navigation.
type NavItem struct {
	Key  string
	Href string
}

// Lecture is a past talk or advisory board.
type Lecture struct {
	Title string
	Event string
	Date  string
	Type  string
	Image string
}

// MediaLink is a press, video or podcast appearance.
type MediaLink struct {
	Title    string
	Platform string
	Type     string
	Link     string
	Date     string
}

// ExternalLink points to a society or institution.
type ExternalLink struct {
	Name        string
	URL         string
	Description string
}

// Publication is a selected paper.
type Publication struct {
	Year    int
	Title   string
	Journal string
}

// Navigation lists the sections in page order.
var Navigation = []NavItem{
	{Key: "nav.about", Href: "#about"},
	{Key: "nav.expertise", Href: "#expertise"},
	{Key: "nav.science", Href: "#science"},
	{Key: "nav.lectures", Href: "#lectures"},
	{Key: "nav.media", Href: "#media"},
	{Key: "nav.consultation", Href: "#consultation"},
	{Key: "nav.contact", Href: "#contact"},
}

var ExternalLinks = []ExternalLink{
	{Name: "ÖGP", URL: "https://www.ogp.at/", Description: "Österreichische Gesellschaft für Pneumologie"},
	{Name: "JKU Linz", URL: "https://www.jku.at/universitaetsklinikum-linz/", Description: "JKU Universitätsklinikum Linz"},
	{Name: "SALK", URL: "https://www.salk.at/", Description: "Salzburger Landeskliniken"},
	{Name: "ERS", URL: "https://www.ersnet.org/", Description: "European Respiratory Society"},
	{Name: "IASLC", URL: "https://www.iaslc.org/", Description: "International Association for the Study of Lung Cancer"},
}

var Lectures = []Lecture{
	{
		Title: "Neue Therapiestrategien beim NSCLC",
		Event: "ÖGP Jahrestagung 2023",
		Date:  "Oktober 2023",
		Type:  "Vortrag",
		Image: "https://picsum.photos/seed/lecture1/800/600",
	},
	{
		Title: "Advisory Board: Immunonkologie Update",
		Event: "Pharma-Konsortium Wien",
		Date:  "Juni 2023",
		Type:  "Advisory Board",
		Image: "https://picsum.photos/seed/board1/800/600",
	},
	{
		Title: "Habilitationsvortrag: Biomarker in der Onkologie",
		Event: "Medizinische Fakultät JKU",
		Date:  "März 2024",
		Type:  "Keynote",
		Image: "https://picsum.photos/seed/lecture2/800/600",
	},
}

var MediaLinks = []MediaLink{
	{Title: "Früherkennung von Lungenkrebs", Platform: "ORF Heute Leben", Type: "Video", Link: "#", Date: "Januar 2024"},
	{Title: "Moderne Krebstherapie im Fokus", Platform: "Medizin-Podcast Linz", Type: "Podcast", Link: "#", Date: "November 2023"},
	{Title: "Spitzenmedizin in Oberösterreich", Platform: "OÖ Nachrichten", Type: "Interview", Link: "#", Date: "August 2023"},
}

var Publications = []Publication{
	{Year: 2024, Title: "Impact of Liquid Biopsy on Lung Cancer Staging", Journal: "Journal of Clinical Oncology"},
	{Year: 2023, Title: "Novel Immunotherapy Combinations in SCLC", Journal: "The Lancet Respiratory Medicine"},
	{Year: 2023, Title: "Real-world data on EGFR mutation outcomes in Austria", Journal: "Wiener Klinische Wochenschrift"},
}
