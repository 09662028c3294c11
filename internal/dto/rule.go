package dto

import (
	"time"

	"github.com/fiscalia/fiscal_tracker_app/internal/core/domain"
)

// CreateRuleRequest defines the data needed to create a catalog entry.
// DueMonth may be omitted for MONTHLY rules, which recur on DueDay every
// calendar month.
type CreateRuleRequest struct {
	PersonCategory    string `json:"personCategory" binding:"required,oneof=LEGAL_ENTITY NATURAL_PERSON"`
	PersonSubCategory string `json:"personSubCategory"`
	ObligationType    string `json:"obligationType" binding:"required"`
	Tag               string `json:"tag" binding:"required"`
	Frequency         string `json:"frequency" binding:"required,oneof=MONTHLY QUARTERLY ANNUAL"`
	ReferencePeriod   string `json:"referencePeriod"`
	DueDay            int    `json:"dueDay" binding:"required,min=1,max=31"`
	DueMonth          int    `json:"dueMonth" binding:"omitempty,min=1,max=12"`
	Detail            string `json:"detail"`
	FormReference     string `json:"formReference"`
	Link              string `json:"link" binding:"omitempty,url"`
	Comment           string `json:"comment"`
}

// UpdateRuleRequest supersedes an existing catalog entry. Edits never
// retroactively alter obligations already derived from the entry.
type UpdateRuleRequest struct {
	PersonCategory    string `json:"personCategory" binding:"required,oneof=LEGAL_ENTITY NATURAL_PERSON"`
	PersonSubCategory string `json:"personSubCategory"`
	ObligationType    string `json:"obligationType" binding:"required"`
	Tag               string `json:"tag" binding:"required"`
	Frequency         string `json:"frequency" binding:"required,oneof=MONTHLY QUARTERLY ANNUAL"`
	ReferencePeriod   string `json:"referencePeriod"`
	DueDay            int    `json:"dueDay" binding:"required,min=1,max=31"`
	DueMonth          int    `json:"dueMonth" binding:"omitempty,min=1,max=12"`
	Detail            string `json:"detail"`
	FormReference     string `json:"formReference"`
	Link              string `json:"link" binding:"omitempty,url"`
	Comment           string `json:"comment"`
}

// RuleResponse defines the data returned for a catalog entry.
type RuleResponse struct {
	RuleID            string    `json:"ruleID"`
	PersonCategory    string    `json:"personCategory"`
	PersonSubCategory string    `json:"personSubCategory,omitempty"`
	ObligationType    string    `json:"obligationType"`
	Tag               string    `json:"tag"`
	Frequency         string    `json:"frequency"`
	ReferencePeriod   string    `json:"referencePeriod,omitempty"`
	DueDay            int       `json:"dueDay"`
	DueMonth          int       `json:"dueMonth"`
	Detail            string    `json:"detail,omitempty"`
	FormReference     string    `json:"formReference,omitempty"`
	Link              string    `json:"link,omitempty"`
	Comment           string    `json:"comment,omitempty"`
	IsActive          bool      `json:"isActive"`
	CreatedAt         time.Time `json:"createdAt"`
	LastUpdatedAt     time.Time `json:"lastUpdatedAt"`
}

// ListRulesResponse is one page of catalog entries.
type ListRulesResponse struct {
	Rules     []RuleResponse `json:"rules"`
	NextToken string         `json:"nextToken,omitempty"`
}

// ToRuleResponse converts a domain RuleCatalogEntry to its response DTO
func ToRuleResponse(r *domain.RuleCatalogEntry) RuleResponse {
	return RuleResponse{
		RuleID:            r.RuleID,
		PersonCategory:    string(r.PersonCategory),
		PersonSubCategory: r.PersonSubCategory,
		ObligationType:    r.ObligationType,
		Tag:               r.Tag,
		Frequency:         string(r.Frequency),
		ReferencePeriod:   r.ReferencePeriod,
		DueDay:            r.DueDay,
		DueMonth:          r.DueMonth,
		Detail:            r.Detail,
		FormReference:     r.FormReference,
		Link:              r.Link,
		Comment:           r.Comment,
		IsActive:          r.IsActive,
		CreatedAt:         r.CreatedAt,
		LastUpdatedAt:     r.LastUpdatedAt,
	}
}

// ToListRulesResponse converts a page of domain rules to the list DTO
func ToListRulesResponse(rules []domain.RuleCatalogEntry, nextToken string) ListRulesResponse {
	res := make([]RuleResponse, len(rules))
	for i := range rules {
		res[i] = ToRuleResponse(&rules[i])
	}
	return ListRulesResponse{Rules: res, NextToken: nextToken}
}
