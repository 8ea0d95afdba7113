package routes

import (
	"encoding/xml"
	"os"
	"time"

	"github.com/kataras/iris/v12"

	"github.com/sirdab/marketplace-v03-sub000/utils"
)

// Generated SEO artifacts: robots.txt plus a sitemap index pointing at one
// urlset enumerating the landing page, city pages and published ads.

const xmlnsSitemap = "http://www.sitemaps.org/schemas/sitemap/0.9"

func baseURL() string {
	if v := os.Getenv("PUBLIC_BASE_URL"); v != "" {
		return v
	}
	return "https://www.sirdab.site"
}

func (api *API) RobotsTxt(ctx iris.Context) {
	ctx.ContentType("text/plain")
	ctx.WriteString("User-agent: *\nAllow: /\n\nSitemap: " + baseURL() + "/sitemap.xml\n")
}

type sitemapIndex struct {
	XMLName  xml.Name       `xml:"sitemapindex"`
	Xmlns    string         `xml:"xmlns,attr"`
	Sitemaps []sitemapEntry `xml:"sitemap"`
}

type sitemapEntry struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

type urlSet struct {
	XMLName xml.Name   `xml:"urlset"`
	Xmlns   string     `xml:"xmlns,attr"`
	URLs    []urlEntry `xml:"url"`
}

type urlEntry struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

func (api *API) SitemapIndex(ctx iris.Context) {
	index := sitemapIndex{
		Xmlns: xmlnsSitemap,
		Sitemaps: []sitemapEntry{
			{Loc: baseURL() + "/sitemap-0.xml", LastMod: time.Now().Format("2006-01-02")},
		},
	}
	writeXML(ctx, index)
}

func (api *API) Sitemap(ctx iris.Context) {
	urls := []urlEntry{{Loc: baseURL() + "/"}}

	cities, err := api.store.Cities()
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	for _, city := range cities {
		urls = append(urls, urlEntry{Loc: baseURL() + "/" + city.Country + "/" + city.Slug})
	}

	ads, err := api.store.PublishedAds()
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	for _, ad := range ads {
		lastMod := ad.UpdatedAt
		if lastMod.IsZero() {
			lastMod = ad.CreatedAt
		}
		urls = append(urls, urlEntry{
			Loc:     baseURL() + "/ad/" + ad.Slug,
			LastMod: lastMod.Format("2006-01-02"),
		})
	}

	writeXML(ctx, urlSet{Xmlns: xmlnsSitemap, URLs: urls})
}

func writeXML(ctx iris.Context, v interface{}) {
	out, err := xml.MarshalIndent(v, "", "  ")
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.ContentType("application/xml")
	ctx.WriteString(xml.Header + string(out))
}
