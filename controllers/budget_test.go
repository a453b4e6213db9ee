package controllers

import (
	"testing"

	"anchored/models"
)

func TestSummarizeBudget(t *testing.T) {
	entries := []models.BudgetEntry{
		{Kind: "income", Amount: 500000},
		{Kind: "income", Amount: 120000},
		{Kind: "expense", Category: "groceries", Amount: 80000},
		{Kind: "expense", Category: "groceries", Amount: 20000},
		{Kind: "expense", Category: "", Amount: 5000},
	}

	summary := summarizeBudget(entries)

	if summary.Income != 620000 {
		t.Errorf("income = %d, want 620000", summary.Income)
	}
	if summary.Expenses != 105000 {
		t.Errorf("expenses = %d, want 105000", summary.Expenses)
	}
	if summary.Balance != 515000 {
		t.Errorf("balance = %d, want 515000", summary.Balance)
	}
	if summary.ByCategory["groceries"] != 100000 {
		t.Errorf("groceries = %d, want 100000", summary.ByCategory["groceries"])
	}
	if summary.ByCategory["uncategorized"] != 5000 {
		t.Errorf("uncategorized = %d, want 5000", summary.ByCategory["uncategorized"])
	}
}

func TestSummarizeBudgetEmpty(t *testing.T) {
	summary := summarizeBudget(nil)
	if summary.Income != 0 || summary.Expenses != 0 || summary.Balance != 0 {
		t.Errorf("empty summary not zero: %+v", summary)
	}
	if len(summary.ByCategory) != 0 {
		t.Errorf("by_category not empty: %v", summary.ByCategory)
	}
}
