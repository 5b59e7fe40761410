package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"skill-billing/pkg/api"
)

func outputJSON(data any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func outputBillingTable(result *api.UnifiedBillingResult) error {
	fmt.Println()
	fmt.Println("UNIFIED MONTHLY BILL")
	fmt.Println(strings.Repeat("=", 64))
	for _, item := range result.Breakdown {
		fmt.Printf("  %-30s  $%10s  (%d unique / %d shared)\n",
			truncate(item.ProductName, 30),
			item.EffectivePrice.StringFixed(2),
			item.UniqueSkillsCount,
			item.SharedSkillsCount,
		)
	}
	fmt.Println(strings.Repeat("-", 64))
	fmt.Printf("  %-30s  $%10s\n", "Total", result.TotalMonthlyPrice.StringFixed(2))
	fmt.Printf("  %-30s  $%10s\n", "Savings vs. separate pricing", result.Savings.StringFixed(2))
	if len(result.SharedSkills) > 0 {
		fmt.Printf("  Shared skills (charged once): %s\n", strings.Join(result.SharedSkills, ", "))
	}
	fmt.Println()
	return nil
}

func outputBillingMarkdown(result *api.UnifiedBillingResult) error {
	fmt.Println("## Unified Billing Report")
	fmt.Println()
	fmt.Println("| Product | Unique Skills | Shared Skills | Effective Price |")
	fmt.Println("|---------|---------------|---------------|-----------------|")
	for _, item := range result.Breakdown {
		fmt.Printf("| %s | %d | %d | $%s |\n",
			item.ProductName,
			item.UniqueSkillsCount,
			item.SharedSkillsCount,
			item.EffectivePrice.StringFixed(2),
		)
	}
	fmt.Println()
	fmt.Printf("**Total monthly price:** $%s\n\n", result.TotalMonthlyPrice.StringFixed(2))
	fmt.Printf("**Savings:** $%s\n", result.Savings.StringFixed(2))
	if len(result.SharedSkills) > 0 {
		fmt.Println()
		fmt.Printf("Shared skills charged once: %s\n", strings.Join(result.SharedSkills, ", "))
	}
	return nil
}

func outputOverlapTable(result *api.OverlapResult) error {
	fmt.Println()
	fmt.Println("SKILL OVERLAP")
	fmt.Println(strings.Repeat("=", 64))
	if len(result.OverlapMatrix) == 0 {
		fmt.Println("  No overlapping skills between products.")
		return nil
	}

	firsts := make([]string, 0, len(result.OverlapMatrix))
	for id := range result.OverlapMatrix {
		firsts = append(firsts, id)
	}
	sort.Strings(firsts)
	for _, first := range firsts {
		row := result.OverlapMatrix[first]
		seconds := make([]string, 0, len(row))
		for id := range row {
			seconds = append(seconds, id)
		}
		sort.Strings(seconds)
		for _, second := range seconds {
			fmt.Printf("  %s <-> %s: %s\n", first, second, strings.Join(row[second], ", "))
		}
	}
	fmt.Println(strings.Repeat("-", 64))
	fmt.Printf("  Total pairwise overlap: %d\n\n", result.TotalOverlap)
	return nil
}

func outputRecommendationsTable(recs []api.Recommendation) error {
	fmt.Println()
	fmt.Println("RECOMMENDED PRODUCTS")
	fmt.Println(strings.Repeat("=", 64))
	if len(recs) == 0 {
		fmt.Println("  No complementary products found.")
		return nil
	}
	for _, rec := range recs {
		fmt.Printf("  %-30s  %d shared skills  saves $%s/mo\n",
			truncate(rec.Product.Name, 30),
			rec.SharedSkillsCount,
			rec.PotentialSavings.StringFixed(2),
		)
	}
	fmt.Println()
	return nil
}

func outputUsageTable(result api.UsageBasedBilling) error {
	fmt.Println()
	fmt.Println("USAGE ALLOWANCES")
	fmt.Println(strings.Repeat("=", 64))
	fmt.Printf("  Monthly token allocation:   %d\n", result.MonthlyTokenAllocation)
	fmt.Printf("  Included API calls:         %d\n", result.IncludedAPICalls)
	fmt.Printf("  Token overage rate:         $%s per million tokens\n", result.PricePerMillionTokens.StringFixed(2))
	fmt.Printf("  API call overage rate:      $%s per thousand calls\n\n", result.PricePerThousandAPICalls.StringFixed(2))
	return nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func splitOrigins(origins string) []string {
	parts := strings.Split(origins, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
