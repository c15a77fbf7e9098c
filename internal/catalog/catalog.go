package catalog

import (
	"embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var dataFS embed.FS

// Brand is a product family used for quota segmentation.
type Brand string

const (
	BrandSoftware Brand = "Software"
	BrandStorage  Brand = "Storage"
	BrandPower    Brand = "Power"
	BrandZ        Brand = "Z"
)

// LicensingType is the commercial model of a product, the second quota
// segmentation axis.
type LicensingType string

const (
	LicensingSWTrans      LicensingType = "SW trans"
	LicensingSaaSACV      LicensingType = "SaaS ACV"
	LicensingSubscription LicensingType = "Subscription"
	LicensingStorageTrans LicensingType = "Storage trans"
	LicensingPowerTrans   LicensingType = "Power trans"
	LicensingZTrans       LicensingType = "Z trans"
)

// Pricing lists the commercial options a product is sold under. Empty
// fields mean the option is not offered.
type Pricing struct {
	Perpetual    string `json:"perpetual,omitempty" yaml:"perpetual"`
	SaaS         string `json:"saas,omitempty" yaml:"saas"`
	Subscription string `json:"subscription,omitempty" yaml:"subscription"`
}

type Product struct {
	Name            string        `json:"name" yaml:"name"`
	Description     string        `json:"description" yaml:"description"`
	Brand           Brand         `json:"brand" yaml:"brand"`
	LicensingType   LicensingType `json:"licensingType" yaml:"licensingType"`
	Alignment       string        `json:"alignment" yaml:"alignment"`
	Differentiators []string      `json:"differentiators" yaml:"differentiators"`
	Pricing         Pricing       `json:"pricing" yaml:"pricing"`
}

// PersonaProfile is the static content bundle shown for a buyer-role
// archetype.
type PersonaProfile struct {
	PainPoints []string  `json:"painPoints" yaml:"painPoints"`
	Solutions  []string  `json:"solutions" yaml:"solutions"`
	Messaging  []string  `json:"messaging" yaml:"messaging"`
	Keywords   []string  `json:"keywords" yaml:"keywords"`
	Products   []Product `json:"products" yaml:"products"`
}

// StageStat is one cell of the mock pipeline snapshot. Value is in
// millions of dollars.
type StageStat struct {
	Count      int     `json:"count" yaml:"count"`
	Value      float64 `json:"value" yaml:"value"`
	Percentage int     `json:"percentage" yaml:"percentage"`
}

type PipelineSnapshot struct {
	ByBrand         map[string]StageStat `json:"byBrand" yaml:"byBrand"`
	ByLicensingType map[string]StageStat `json:"byLicensingType" yaml:"byLicensingType"`
}

// QuotaLine is one side of an account's quota split, in raw dollars.
type QuotaLine struct {
	Quota    float64 `json:"quota" yaml:"quota"`
	Achieved float64 `json:"achieved" yaml:"achieved"`
	Type     string  `json:"type" yaml:"type"`
}

type ClosedOpportunity struct {
	ID        string   `json:"id" yaml:"id"`
	Name      string   `json:"name" yaml:"name"`
	Value     float64  `json:"value" yaml:"value"`
	CloseDate string   `json:"closeDate" yaml:"closeDate"`
	Stage     string   `json:"stage" yaml:"stage"`
	QuotaType string   `json:"quotaType" yaml:"quotaType"`
	Products  []string `json:"products" yaml:"products"`
}

type AccountQuota struct {
	Account             string              `json:"account" yaml:"account"`
	PrimaryQuota        QuotaLine           `json:"primaryQuota" yaml:"primaryQuota"`
	SecondaryQuota      QuotaLine           `json:"secondaryQuota" yaml:"secondaryQuota"`
	ClosedOpportunities []ClosedOpportunity `json:"closedOpportunities" yaml:"closedOpportunities"`
	PipelineValue       float64             `json:"pipelineValue" yaml:"pipelineValue"`
	ActiveOpportunities int                 `json:"activeOpportunities" yaml:"activeOpportunities"`
}

// DeployedProduct is an own-portfolio product already running at a
// client, with assigned vs actually deployed revenue.
type DeployedProduct struct {
	Name                 string  `json:"name" yaml:"name"`
	UsagePattern         string  `json:"usagePattern" yaml:"usagePattern"`
	AssignedRevenue      float64 `json:"assignedRevenue" yaml:"assignedRevenue"`
	DeployedRevenue      float64 `json:"deployedRevenue" yaml:"deployedRevenue"`
	LastDeploymentReport string  `json:"lastDeploymentReport" yaml:"lastDeploymentReport"`
	Since                string  `json:"since" yaml:"since"`
}

// CompetitorDeployment is a competitor product observed at a client.
type CompetitorDeployment struct {
	Name         string `json:"name" yaml:"name"`
	UsagePattern string `json:"usagePattern" yaml:"usagePattern"`
	Since        string `json:"since" yaml:"since"`
}

type CompanyUsage struct {
	DeployedProducts    []DeployedProduct      `json:"deployedProducts" yaml:"deployedProducts"`
	DeployedCompetitors []CompetitorDeployment `json:"deployedCompetitors" yaml:"deployedCompetitors"`
}

// SellerSnapshot holds the seller's headline numbers. Quota and
// Achieved are raw dollars, WinRate is a 0..1 fraction.
type SellerSnapshot struct {
	Name           string  `json:"name" yaml:"name"`
	Quota          float64 `json:"quota" yaml:"quota"`
	Achieved       float64 `json:"achieved" yaml:"achieved"`
	WinRate        float64 `json:"winRate" yaml:"winRate"`
	DealsWon       int     `json:"dealsWon" yaml:"dealsWon"`
	AvgDealSize    string  `json:"avgDealSize" yaml:"avgDealSize"`
	ActivePipeline int     `json:"activePipeline" yaml:"activePipeline"`
}

// Catalog is the immutable reference data set. It is loaded once at
// startup and shared read-only across requests.
type Catalog struct {
	personaLabels  []string
	personas       map[string]PersonaProfile
	defaultProfile PersonaProfile

	equivalents      map[string][]string
	brandTargets     map[string]float64
	licensingTargets map[string]float64

	pipeline PipelineSnapshot
	accounts []AccountQuota

	usage         map[string]CompanyUsage
	fallbackUsage CompanyUsage

	quotes []string
	seller SellerSnapshot
}

type personaEntry struct {
	Label   string         `yaml:"label"`
	Profile PersonaProfile `yaml:"profile"`
}

type personasFile struct {
	Personas []personaEntry `yaml:"personas"`
	Default  PersonaProfile `yaml:"default"`
}

type quotasFile struct {
	Brand     map[string]float64 `yaml:"brand"`
	Licensing map[string]float64 `yaml:"licensing"`
	Seller    SellerSnapshot     `yaml:"seller"`
}

type competitorsFile struct {
	Equivalents map[string][]string `yaml:"equivalents"`
}

type usageFile struct {
	Companies map[string]CompanyUsage `yaml:"companies"`
	Fallback  CompanyUsage            `yaml:"fallback"`
}

type quotesFile struct {
	Quotes []string `yaml:"quotes"`
}

type pipelineFile struct {
	Pipeline PipelineSnapshot `yaml:"pipeline"`
	Accounts []AccountQuota   `yaml:"accounts"`
}

// Load parses the embedded reference data. The returned Catalog must
// not be mutated.
func Load() (*Catalog, error) {
	var pf personasFile
	if err := readYAML("data/personas.yaml", &pf); err != nil {
		return nil, err
	}

	var qf quotasFile
	if err := readYAML("data/quotas.yaml", &qf); err != nil {
		return nil, err
	}

	var cf competitorsFile
	if err := readYAML("data/competitors.yaml", &cf); err != nil {
		return nil, err
	}

	var uf usageFile
	if err := readYAML("data/usage.yaml", &uf); err != nil {
		return nil, err
	}

	var plf pipelineFile
	if err := readYAML("data/pipeline.yaml", &plf); err != nil {
		return nil, err
	}

	var quf quotesFile
	if err := readYAML("data/quotes.yaml", &quf); err != nil {
		return nil, err
	}

	c := &Catalog{
		personas:         make(map[string]PersonaProfile, len(pf.Personas)),
		defaultProfile:   pf.Default,
		equivalents:      cf.Equivalents,
		brandTargets:     qf.Brand,
		licensingTargets: qf.Licensing,
		pipeline:         plf.Pipeline,
		accounts:         plf.Accounts,
		usage:            uf.Companies,
		fallbackUsage:    uf.Fallback,
		quotes:           quf.Quotes,
		seller:           qf.Seller,
	}
	for _, entry := range pf.Personas {
		if entry.Label == "" {
			return nil, fmt.Errorf("persona entry with empty label")
		}
		if _, dup := c.personas[entry.Label]; dup {
			return nil, fmt.Errorf("duplicate persona label %q", entry.Label)
		}
		c.personaLabels = append(c.personaLabels, entry.Label)
		c.personas[entry.Label] = entry.Profile
	}
	if len(c.personaLabels) == 0 {
		return nil, fmt.Errorf("persona catalog is empty")
	}
	return c, nil
}

func readYAML(name string, out interface{}) error {
	raw, err := dataFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

// PersonaLabels returns the known persona labels in catalog order.
func (c *Catalog) PersonaLabels() []string {
	out := make([]string, len(c.personaLabels))
	copy(out, c.personaLabels)
	return out
}

// Profile looks up a persona by exact label.
func (c *Catalog) Profile(label string) (PersonaProfile, bool) {
	p, ok := c.personas[label]
	return p, ok
}

// DefaultProfile is the fallback used for unrecognized persona labels.
func (c *Catalog) DefaultProfile() PersonaProfile {
	return c.defaultProfile
}

// FindProduct searches every persona's product list, in catalog order,
// and returns the first product with the given name.
func (c *Catalog) FindProduct(name string) (Product, bool) {
	for _, label := range c.personaLabels {
		for _, p := range c.personas[label].Products {
			if p.Name == name {
				return p, true
			}
		}
	}
	return Product{}, false
}

// Equivalents returns the own-portfolio products mapped to a competitor
// product name or usage-pattern key. The bool reports whether the key
// exists at all.
func (c *Catalog) Equivalents(key string) ([]string, bool) {
	eq, ok := c.equivalents[key]
	return eq, ok
}

// BrandTargets returns quota targets in raw dollars keyed by brand.
func (c *Catalog) BrandTargets() map[string]float64 {
	out := make(map[string]float64, len(c.brandTargets))
	for k, v := range c.brandTargets {
		out[k] = v
	}
	return out
}

// LicensingTargets returns quota targets in raw dollars keyed by
// licensing type.
func (c *Catalog) LicensingTargets() map[string]float64 {
	out := make(map[string]float64, len(c.licensingTargets))
	for k, v := range c.licensingTargets {
		out[k] = v
	}
	return out
}

// Pipeline returns the mock pipeline snapshot.
func (c *Catalog) Pipeline() PipelineSnapshot {
	return c.pipeline
}

// Accounts returns the mock account quota data.
func (c *Catalog) Accounts() []AccountQuota {
	out := make([]AccountQuota, len(c.accounts))
	copy(out, c.accounts)
	return out
}

// Usage returns the deployed-product data for a client, falling back
// to the generic data set when the client is unknown.
func (c *Catalog) Usage(client string) CompanyUsage {
	if u, ok := c.usage[client]; ok {
		return u
	}
	return c.fallbackUsage
}

// Seller returns the seller's headline metrics.
func (c *Catalog) Seller() SellerSnapshot {
	return c.seller
}

// DailyQuote rotates through the quote list by day of year.
func (c *Catalog) DailyQuote(t time.Time) string {
	if len(c.quotes) == 0 {
		return ""
	}
	return c.quotes[t.YearDay()%len(c.quotes)]
}
