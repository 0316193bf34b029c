package repositories

import (
	"lumina/internal/models"

	"github.com/shopspring/decimal"
)

const tradingRisk = "Trading involves risk. Past performance does not guarantee future results."

// DefaultProducts returns the catalog served before the products slot is
// first written.
func DefaultProducts() []models.Product {
	return []models.Product{
		{
			ID:           "s1",
			Name:         "TaskFlow Pro",
			Category:     models.CategorySaaS,
			Price:        decimal.NewFromInt(29),
			Description:  "Cloud-based project management software to track tasks, teams, and deadlines with real-time sync.",
			Image:        "https://images.unsplash.com/photo-1454165804606-c3d57bc86b40?auto=format&fit=crop&q=80&w=800",
			Rating:       4.8,
			Specs:        []string{"Team Collaboration", "Deadline Tracking", "Cloud Sync"},
			BillingModel: models.BillingSubscription,
		},
		{
			ID:           "s2",
			Name:         "Insight CRM",
			Category:     models.CategorySaaS,
			Price:        decimal.NewFromInt(49),
			Description:  "Advanced customer relationship management software with built-in analytics and lead automation.",
			Image:        "https://images.unsplash.com/photo-1552664730-d307ca884978?auto=format&fit=crop&q=80&w=800",
			Rating:       4.7,
			Specs:        []string{"Lead Scoring", "Email Automation", "Sales Pipeline"},
			BillingModel: models.BillingSubscription,
		},
		{
			ID:           "s3",
			Name:         "MarketAI",
			Category:     models.CategorySaaS,
			Price:        decimal.NewFromInt(39),
			Description:  "AI-powered marketing automation platform for cross-channel email and social media campaigns.",
			Image:        "https://images.unsplash.com/photo-1460925895917-afdab827c52f?auto=format&fit=crop&q=80&w=800",
			Rating:       4.9,
			Specs:        []string{"AI Copywriting", "Social Scheduling", "A/B Testing"},
			BillingModel: models.BillingSubscription,
		},
		{
			ID:           "s4",
			Name:         "DataViz Analytics",
			Category:     models.CategorySaaS,
			Price:        decimal.NewFromInt(59),
			Description:  "Real-time analytics dashboard for monitoring websites, sales volume, and key business KPIs.",
			Image:        "https://images.unsplash.com/photo-1551288049-bebda4e38f71?auto=format&fit=crop&q=80&w=800",
			Rating:       4.6,
			Specs:        []string{"Live Reporting", "Custom Dashboards", "API Export"},
			BillingModel: models.BillingSubscription,
		},
		{
			ID:           "s5",
			Name:         "TimeTracker Plus",
			Category:     models.CategorySaaS,
			Price:        decimal.NewFromInt(19),
			Description:  "Lightweight time tracking and productivity software for agile teams and independent operatives.",
			Image:        "https://images.unsplash.com/photo-1434030216411-0b793f4b4173?auto=format&fit=crop&q=80&w=800",
			Rating:       4.5,
			Specs:        []string{"Invoicing", "Pomodoro Timer", "Activity Reports"},
			BillingModel: models.BillingSubscription,
		},
		{
			ID:           "t1",
			Name:         "CryptoBot X",
			Category:     models.CategoryTradingBots,
			Price:        decimal.NewFromInt(99),
			Description:  "Automated cryptocurrency trading bot with pre-set strategies. Includes risk management v2.",
			Image:        "https://images.unsplash.com/photo-1621761191319-c6fb62004040?auto=format&fit=crop&q=80&w=800",
			Rating:       4.8,
			Specs:        []string{"Multi-Exchange API", "Stop-Loss Logic", "Auto-Hedging"},
			BillingModel: models.BillingOneTime,
			Disclaimer:   tradingRisk,
		},
		{
			ID:           "t2",
			Name:         "StockTrader AI",
			Category:     models.CategoryTradingBots,
			Price:        decimal.NewFromInt(149),
			Description:  "Stock market trading automation with deep backtesting capabilities.",
			Image:        "https://images.unsplash.com/photo-1611974717483-58da8d10fed0?auto=format&fit=crop&q=80&w=800",
			Rating:       4.7,
			Specs:        []string{"Backtesting Engine", "Algorithmic Execution", "NYSE/NASDAQ Data"},
			BillingModel: models.BillingOneTime,
			Disclaimer:   tradingRisk,
		},
		{
			ID:           "t3",
			Name:         "SignalGen Pro",
			Category:     models.CategoryTradingBots,
			Price:        decimal.NewFromInt(49),
			Description:  "High-accuracy trading signal generation tool for crypto and stock markets.",
			Image:        "https://images.unsplash.com/photo-1590283603385-17ffb3a7f29f?auto=format&fit=crop&q=80&w=800",
			Rating:       4.9,
			Specs:        []string{"Telegram Alerts", "Custom Indicators", "Mobile Push"},
			BillingModel: models.BillingSubscription,
			Disclaimer:   tradingRisk,
		},
		{
			ID:           "t4",
			Name:         "Portfolio Manager",
			Category:     models.CategoryTradingBots,
			Price:        decimal.NewFromInt(29),
			Description:  "Unified tactical dashboard to track all cross-platform investments in one secure place.",
			Image:        "https://images.unsplash.com/photo-1579621970795-87faff2f916a?auto=format&fit=crop&q=80&w=800",
			Rating:       4.6,
			Specs:        []string{"Multi-Asset Tracking", "Net Worth Chart", "Dividend Logs"},
			BillingModel: models.BillingSubscription,
		},
		{
			ID:           "t5",
			Name:         "TradeSim",
			Category:     models.CategoryTradingBots,
			Price:        decimal.NewFromInt(39),
			Description:  "Advanced backtesting and simulation software for stress-testing your own trading strategies.",
			Image:        "https://images.unsplash.com/photo-1535320903710-d993d3d77d29?auto=format&fit=crop&q=80&w=800",
			Rating:       4.5,
			Specs:        []string{"Historical Replay", "Performance Stats", "Strategy Builder"},
			BillingModel: models.BillingOneTime,
		},
		{
			ID:           "w1",
			Name:         "WebStart Template",
			Category:     models.CategoryTemplates,
			Price:        decimal.NewFromInt(49),
			Description:  "Fully responsive, high-speed website template built with React and Tailwind CSS for startups.",
			Image:        "https://images.unsplash.com/photo-1547658719-da2b51169166?auto=format&fit=crop&q=80&w=800",
			Rating:       4.9,
			Specs:        []string{"React Based", "Tailwind Ready", "SEO Optimized"},
			BillingModel: models.BillingOneTime,
		},
		{
			ID:           "w2",
			Name:         "Shopify E-Store Kit",
			Category:     models.CategoryTemplates,
			Price:        decimal.NewFromInt(79),
			Description:  "Premium, pre-built Liquid-based Shopify templates designed for high-conversion retail.",
			Image:        "https://images.unsplash.com/photo-1522204538344-922f76eba0a4?auto=format&fit=crop&q=80&w=800",
			Rating:       4.8,
			Specs:        []string{"Section-Based", "Cart Drawers", "Mobile Focused"},
			BillingModel: models.BillingOneTime,
		},
		{
			ID:           "w3",
			Name:         "LandingPro",
			Category:     models.CategoryTemplates,
			Price:        decimal.NewFromInt(29),
			Description:  "A collection of high-converting landing page templates optimized for PPC and social campaigns.",
			Image:        "https://images.unsplash.com/photo-1558655146-d09347e92766?auto=format&fit=crop&q=80&w=800",
			Rating:       4.7,
			Specs:        []string{"Single Page", "Lead Forms", "Fast Load"},
			BillingModel: models.BillingOneTime,
		},
		{
			ID:           "d1",
			Name:         "UIUX Design Kit",
			Category:     models.CategoryDigitalAssets,
			Price:        decimal.NewFromInt(59),
			Description:  "A comprehensive library of UI components and dashboard layouts in Figma and Adobe XD formats.",
			Image:        "https://images.unsplash.com/photo-1586717791821-3f44a563eb4c?auto=format&fit=crop&q=80&w=800",
			Rating:       4.9,
			Specs:        []string{"Figma File", "Icon Sets", "Design Tokens"},
			BillingModel: models.BillingOneTime,
		},
		{
			ID:           "d2",
			Name:         "Graphics Pack",
			Category:     models.CategoryDigitalAssets,
			Price:        decimal.NewFromInt(19),
			Description:  "Elite collection of icons, illustrations, and 3D mockups for professional web and app design.",
			Image:        "https://images.unsplash.com/photo-1618005182384-a83a8bd57fbe?auto=format&fit=crop&q=80&w=800",
			Rating:       4.6,
			Specs:        []string{"Vector Formats", "3D Renders", "Unlimited License"},
			BillingModel: models.BillingOneTime,
		},
		{
			ID:           "d3",
			Name:         "SlideDeck Pro",
			Category:     models.CategoryDigitalAssets,
			Price:        decimal.NewFromInt(29),
			Description:  "Ultra-modern presentation templates for high-stakes business pitches and data reports.",
			Image:        "https://images.unsplash.com/photo-1557804506-669a67965ba0?auto=format&fit=crop&q=80&w=800",
			Rating:       4.7,
			Specs:        []string{"PPTX / Keynote", "Data Charts", "Animation Guides"},
			BillingModel: models.BillingOneTime,
		},
		{
			ID:           "e1",
			Name:         "ReadyStore",
			Category:     models.CategoryEcommerceDev,
			Price:        decimal.NewFromInt(499),
			Description:  "Full end-to-end e-commerce setup on Shopify or Webflow. We build the store, you own the profits.",
			Image:        "https://images.unsplash.com/photo-1460925895917-afdab827c52f?auto=format&fit=crop&q=80&w=800",
			Rating:       5.0,
			Specs:        []string{"Domain Setup", "Theme Install", "5 Core Pages"},
			BillingModel: models.BillingService,
		},
		{
			ID:           "e2",
			Name:         "StoreSpeed",
			Category:     models.CategoryEcommerceDev,
			Price:        decimal.NewFromInt(149),
			Description:  "Technical performance optimization to achieve 90+ PageSpeed scores on mobile and desktop.",
			Image:        "https://images.unsplash.com/photo-1461749280684-dccba630e2f6?auto=format&fit=crop&q=80&w=800",
			Rating:       4.8,
			Specs:        []string{"Image Compression", "Script Deferral", "CDN Config"},
			BillingModel: models.BillingService,
		},
		{
			ID:           "e3",
			Name:         "Custom Theme",
			Category:     models.CategoryEcommerceDev,
			Price:        decimal.NewFromInt(299),
			Description:  "Fully bespoke visual design and template development for a unique digital brand identity.",
			Image:        "https://images.unsplash.com/photo-1559028012-481c04fa702d?auto=format&fit=crop&q=80&w=800",
			Rating:       4.9,
			Specs:        []string{"Brand Design", "Custom Code", "Unique UX"},
			BillingModel: models.BillingService,
		},
		{
			ID:           "e4",
			Name:         "IntegratePro",
			Category:     models.CategoryEcommerceDev,
			Price:        decimal.NewFromInt(199),
			Description:  "Seamless integration of payment gateways, analytics pixels, and CRM pipelines.",
			Image:        "https://images.unsplash.com/photo-1563013544-824ae1b704d3?auto=format&fit=crop&q=80&w=800",
			Rating:       4.7,
			Specs:        []string{"Stripe/PayPal", "FB/GA4 Pixels", "Zapier Hooks"},
			BillingModel: models.BillingService,
		},
		{
			ID:           "e5",
			Name:         "Maintenance Plan",
			Category:     models.CategoryEcommerceDev,
			Price:        decimal.NewFromInt(49),
			Description:  "Recurring monthly technical support, security patches, and content updates for your store.",
			Image:        "https://images.unsplash.com/photo-1581092921461-7033e85ac34a?auto=format&fit=crop&q=80&w=800",
			Rating:       4.6,
			Specs:        []string{"Daily Backups", "App Updates", "Priority Support"},
			BillingModel: models.BillingSubscription,
		},
		{
			ID:           "c1",
			Name:         "Security Audit",
			Category:     models.CategoryCybersecurity,
			Price:        decimal.NewFromInt(299),
			Description:  "Comprehensive penetration testing and vulnerability assessment for your cloud infrastructure.",
			Image:        "https://images.unsplash.com/photo-1563986768609-322da13575f3?auto=format&fit=crop&q=80&w=800",
			Rating:       5.0,
			Specs:        []string{"Pentesting", "Risk Report", "Fix Roadmap"},
			BillingModel: models.BillingService,
		},
		{
			ID:           "c2",
			Name:         "CloudSecure",
			Category:     models.CategoryCybersecurity,
			Price:        decimal.NewFromInt(199),
			Description:  "Expert cloud security hardening for AWS, Azure, and GCP environments.",
			Image:        "https://images.unsplash.com/photo-1544197150-b99a580bb7a8?auto=format&fit=crop&q=80&w=800",
			Rating:       4.9,
			Specs:        []string{"IAM Hardening", "VPC Config", "Encryption Set"},
			BillingModel: models.BillingService,
		},
		{
			ID:           "c3",
			Name:         "MonitoringPro",
			Category:     models.CategoryCybersecurity,
			Price:        decimal.NewFromInt(49),
			Description:  "24/7 continuous security monitoring and real-time alerts for unauthorized access attempts.",
			Image:        "https://images.unsplash.com/photo-1550751827-4bd374c3f58b?auto=format&fit=crop&q=80&w=800",
			Rating:       4.8,
			Specs:        []string{"Log Analysis", "IP Blacklisting", "Instant Alerts"},
			BillingModel: models.BillingSubscription,
		},
		{
			ID:           "c4",
			Name:         "SSL Setup",
			Category:     models.CategoryCybersecurity,
			Price:        decimal.NewFromInt(49),
			Description:  "End-to-end SSL certificate management and implementation for enterprise domains.",
			Image:        "https://images.unsplash.com/photo-1510511459019-5dee99c48db8?auto=format&fit=crop&q=80&w=800",
			Rating:       4.7,
			Specs:        []string{"HTTPS Forced", "Auto-Renewal", "CORS Config"},
			BillingModel: models.BillingOneTime,
		},
		{
			ID:           "c5",
			Name:         "CyberConsult",
			Category:     models.CategoryCybersecurity,
			Price:        decimal.NewFromInt(99),
			Description:  "Hourly private security consultation and risk mitigation planning with elite engineers.",
			Image:        "https://images.unsplash.com/photo-1573164713714-d95e436ab8d6?auto=format&fit=crop&q=80&w=800",
			Rating:       5.0,
			Specs:        []string{"Incident Plan", "Staff Training", "Risk Scorecard"},
			BillingModel: models.BillingService,
		},
	}
}
