package subscription

import "github.com/osse101/Milestone_Go/internal/domain"

var catalog = []domain.PremiumFeature{
	{ID: domain.FeatureRemoveAds, Title: "Remove Ads", Description: "Enjoy an ad-free experience", Icon: "🚫", RequiredTier: domain.TierBasic},
	{ID: domain.FeatureAdvancedAnalytics, Title: "Advanced Analytics", Description: "Detailed insights and reports", Icon: "📊", RequiredTier: domain.TierPremium},
	{ID: domain.FeatureOfflineMode, Title: "Offline Mode", Description: "Access content without internet", Icon: "📱", RequiredTier: domain.TierPremium},
	{ID: domain.FeatureCustomThemes, Title: "Custom Themes", Description: "Personalize your app appearance", Icon: "🎨", RequiredTier: domain.TierPro},
	{ID: domain.FeatureExportData, Title: "Export Data", Description: "Download your data as CSV/JSON", Icon: "📁", RequiredTier: domain.TierPro},
	{ID: domain.FeaturePrioritySupport, Title: "Priority Support", Description: "Get help faster from our team", Icon: "🎧", RequiredTier: domain.TierPremium},
	{ID: domain.FeatureTeamFeatures, Title: "Team Features", Description: "Collaboration and sharing tools", Icon: "👥", RequiredTier: domain.TierPro},
	{ID: domain.FeatureUnlimitedTopics, Title: "Unlimited Topics", Description: "Access to all learning content", Icon: "♾️", RequiredTier: domain.TierBasic},
}

// Catalog returns the gated feature definitions with IsLocked unset
func Catalog() []domain.PremiumFeature {
	out := make([]domain.PremiumFeature, len(catalog))
	copy(out, catalog)
	return out
}

func findFeature(id string) (domain.PremiumFeature, bool) {
	for _, f := range catalog {
		if f.ID == id {
			return f, true
		}
	}
	return domain.PremiumFeature{}, false
}
