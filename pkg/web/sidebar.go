package web

import "html/template"

type MenuItem struct {
	Name string
	URL  string
	Icon template.HTML // SVG icon as a string
}

var menuItems = []MenuItem{
	{
		Name: "NER Inference",
		URL:  "/",
		Icon: template.HTML(InferenceIcon),
	},
	{
		Name: "Dataset Documentation",
		URL:  "/docs",
		Icon: template.HTML(DocsIcon),
	},
}

type ExternalPage struct {
	Title string
	URL   string
}

var quickLinks = []ExternalPage{
	{
		Title: "Dataset on Kaggle",
		URL:   "https://www.kaggle.com/datasets/alaakhaled/conll003-englishversion",
	},
	{
		Title: "GitHub Repository",
		URL:   "https://github.com/MON3EMPASHA/NER-for-New-Articles-trained-on-CoNLL03-Dataset.git",
	},
	{
		Title: "My Portfolio",
		URL:   "https://abdelmonem-hatem.netlify.app/",
	},
}

const InferenceIcon = `<svg class="icon" xmlns="http://www.w3.org/2000/svg" width="16" height="16" fill="none" stroke="currentColor" stroke-width="2" viewBox="0 0 24 24"><rect x="4" y="4" width="16" height="16" rx="2"/><path d="M9 9h6v6H9z"/></svg>`

const DocsIcon = `<svg class="icon" xmlns="http://www.w3.org/2000/svg" width="16" height="16" fill="none" stroke="currentColor" stroke-width="2" viewBox="0 0 24 24"><path d="M4 19.5A2.5 2.5 0 0 1 6.5 17H20"/><path d="M6.5 2H20v20H6.5A2.5 2.5 0 0 1 4 19.5v-15A2.5 2.5 0 0 1 6.5 2z"/></svg>`
