package adzuna

import (
	"net/http"
	"time"
)

// Config defines Adzuna API client settings
type Config struct {
	AppID      string
	AppKey     string
	Country    string // ISO code of the Adzuna market, "in" by default
	BaseURL    string
	HTTPClient *http.Client
	PageSize   int
}

// Client queries the Adzuna job search API
type Client struct {
	appID      string
	appKey     string
	country    string
	baseURL    string
	httpClient *http.Client
	pageSize   int
}

// SearchParams narrow a keyword search
type SearchParams struct {
	Location string
	// Category is an Adzuna category tag such as "it-jobs"
	Category string
	Page     int
}

type jobSearchResponse struct {
	Count   int          `json:"count"`
	Results []jobPosting `json:"results"`
}

type jobPosting struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Company      companySummary  `json:"company"`
	Location     locationSummary `json:"location"`
	Description  string          `json:"description"`
	Created      string          `json:"created"`
	RedirectURL  string          `json:"redirect_url"`
	ContractTime string          `json:"contract_time"`
	ContractType string          `json:"contract_type"`
	Category     struct {
		Tag   string `json:"tag"`
		Label string `json:"label"`
	} `json:"category"`
	SalaryMin float64 `json:"salary_min"`
	SalaryMax float64 `json:"salary_max"`
}

type companySummary struct {
	DisplayName string `json:"display_name"`
}

type locationSummary struct {
	DisplayName string `json:"display_name"`
}

// Job is an Adzuna advert with the fields the agency imports
type Job struct {
	ID            string
	Title         string
	CompanyName   string
	Location      string
	URL           string
	Description   string
	ContractTime  string // full_time or part_time
	ContractType  string // permanent or contract
	CategoryLabel string
	PostedAt      time.Time
	SalaryMin     float64
	SalaryMax     float64
}
