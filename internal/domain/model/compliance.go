package model

// 法令関連の定型文の種類（閉じた集合）
type ComplianceContentType string

const (
	ComplianceHealthWarning  ComplianceContentType = "health_warning"
	ComplianceTermsOfService ComplianceContentType = "terms_of_service"
	CompliancePrivacyPolicy  ComplianceContentType = "privacy_policy"
	ComplianceTGAStatement   ComplianceContentType = "tga_statement"
)

// 定型文は静的なマップで持つ。動的な組み立てはしない。
var complianceContent = map[ComplianceContentType]string{
	ComplianceHealthWarning: `⚠️ HEALTH WARNING

This product contains nicotine. Nicotine is highly addictive.

• Do not use if you are pregnant or breastfeeding
• Do not use if you have heart disease or high blood pressure
• May cause dependence
• Keep out of reach of children and pets

For more information, visit the Australian Therapeutic Goods Administration (TGA) website.`,

	ComplianceTermsOfService: `TERMS OF SERVICE

Last Updated: January 1, 2026

1. AGE RESTRICTION
You must be 18 years of age or older to purchase products from ManusVape. By accessing this website, you confirm that you meet this requirement.

2. PRODUCT RESTRICTIONS
• Products are for use by adults only
• Not for sale to minors
• Resale or distribution to minors is prohibited

3. AUSTRALIAN COMPLIANCE
All products comply with Australian Therapeutic Goods Administration (TGA) regulations. These products are intended for adult consumers only.

4. LIMITATION OF LIABILITY
ManusVape is not responsible for misuse of products or failure to comply with local laws.

5. TERMINATION
We reserve the right to refuse service to anyone who violates these terms.`,

	CompliancePrivacyPolicy: `PRIVACY POLICY

Last Updated: January 1, 2026

1. INFORMATION WE COLLECT
• Personal information (name, email, address)
• Payment information (processed securely)
• Age verification data
• Purchase history

2. HOW WE USE YOUR INFORMATION
• To process orders and payments
• To comply with legal obligations
• To improve our services
• To send order updates and promotional content (with consent)

3. DATA PROTECTION
We implement industry-standard security measures to protect your personal information. However, no method of transmission over the Internet is 100% secure.

4. YOUR RIGHTS
You have the right to access, correct, or delete your personal information. Contact us at privacy@manusvape.com.au.

5. COMPLIANCE
This privacy policy complies with the Australian Privacy Act 1988 and the Privacy Principles.`,

	ComplianceTGAStatement: `TGA STATEMENT

These products are regulated by the Australian Therapeutic Goods Administration (TGA) as therapeutic goods containing nicotine.

• TGA Registration Required: All products sold must be registered with the TGA
• Age Restriction: Sale to persons under 18 years is prohibited
• Health Warnings: Must be clearly displayed
• Reporting: Adverse events should be reported to the TGA

For more information, visit: https://www.tga.gov.au/

ManusVape is committed to full compliance with all TGA regulations and Australian law.`,
}

// ComplianceContent は種類に対応する定型文を返す。
// 未知の種類は ok=false。
func ComplianceContent(t ComplianceContentType) (string, bool) {
	s, ok := complianceContent[t]
	return s, ok
}
