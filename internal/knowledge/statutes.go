// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package knowledge

import "strings"

// Statutes is the Indian statute reference set used to annotate analyses.
var Statutes = []Statute{
	{
		Act:  "Indian Contract Act",
		Year: 1872,
		Sections: map[string]string{
			"2(a)": "When a person signifies to another his willingness to do or to abstain from doing anything, with a view to obtaining the assent of that other to such act or abstinence, he is said to make a proposal",
			"2(b)": "When the person to whom the proposal is made signifies his assent thereto, the proposal is said to be accepted",
			"2(e)": "Every promise and every set of promises, forming the consideration for each other, is an agreement",
			"2(h)": "An agreement enforceable by law is a contract",
			"10":   "All agreements are contracts if they are made by the free consent of parties competent to contract, for a lawful consideration and with a lawful object, and are not hereby expressly declared to be void",
			"11":   "Every person is competent to contract who is of the age of majority according to the law to which he is subject, and who is of sound mind, and is not disqualified from contracting by any law to which he is subject",
			"13":   "Consent is said to be free when it is not caused by coercion, undue influence, fraud, misrepresentation, or mistake",
			"56":   "An agreement to do an act impossible in itself is void",
			"73":   "When a contract has been broken, the party who suffers by such breach is entitled to receive compensation for any loss or damage caused to him thereby",
		},
		ApplicableDocuments: []DocumentType{DocServiceAgreement, DocEmploymentContract, DocPartnershipDeed, DocLoanAgreement},
		Penalties:           []string{"Void agreement", "Voidable contract", "Damages", "Specific performance"},
	},
	{
		Act:  "GST Act",
		Year: 2017,
		Sections: map[string]string{
			"2(52)": "Goods and Services Tax means any tax on supply of goods or services or both except taxes on the supply of the alcoholic liquor for human consumption",
			"9":     "There shall be levied a tax called the central goods and services tax on all intra-State supplies of goods or services or both",
			"12":    "The rates of tax under this Act shall be as recommended by the Council",
			"16":    "Every registered person shall be entitled to take credit of input tax charged on any supply of goods or services or both to him",
			"22":    "Every supplier shall be liable to be registered under this Act if the aggregate turnover in a financial year exceeds twenty lakh rupees",
		},
		ApplicableDocuments: []DocumentType{DocServiceAgreement, DocSaleDeed, DocPartnershipDeed},
		Penalties:           []string{"Late fee", "Interest", "Penalty up to 200% of tax"},
	},
	{
		Act:  "Companies Act",
		Year: 2013,
		Sections: map[string]string{
			"2(20)": "Company means a company incorporated under this Act or under any previous company law",
			"4":     "A company may be formed for any lawful purpose by seven or more persons or, where the company to be formed will be a private company, by two or more persons",
			"149":   "Every company shall have a Board of Directors consisting of individuals as directors",
			"179":   "Subject to the provisions of this Act, the Board of Directors of a company shall be entitled to exercise all such powers",
		},
		ApplicableDocuments: []DocumentType{DocServiceAgreement, DocEmploymentContract, DocPartnershipDeed},
		Penalties:           []string{"Fine", "Imprisonment", "Disqualification"},
	},
}

// LegalCases is the precedent database matched against document content.
var LegalCases = []LegalCase{
	{
		Title:            "Mohori Bibee v. Dharmodas Ghose",
		Citation:         "(1903) ILR 30 Cal 539",
		Court:            "Privy Council",
		Year:             1903,
		Principle:        "Agreement by a minor is void ab initio",
		RelevantSections: []string{"Section 11", "Section 2(g)"},
		Keywords:         []string{"minor", "capacity", "void agreement", "age"},
		Category:         "contract_capacity",
	},
	{
		Title:            "Satyabrata Ghose v. Mugneeram Bangur & Co.",
		Citation:         "AIR 1954 SC 44",
		Court:            "Supreme Court",
		Year:             1954,
		Principle:        "Doctrine of frustration in Indian contract law",
		RelevantSections: []string{"Section 56"},
		Keywords:         []string{"frustration", "impossibility", "performance"},
		Category:         "contract_performance",
	},
	{
		Title:            "Lalman Shukla v. Gauri Dutt",
		Citation:         "(1913) ILR 39 All 489",
		Court:            "Allahabad High Court",
		Year:             1913,
		Principle:        "Communication of offer is essential for valid acceptance",
		RelevantSections: []string{"Section 4", "Section 8"},
		Keywords:         []string{"offer", "acceptance", "communication"},
		Category:         "contract_formation",
	},
	{
		Title:            "Carlill v. Carbolic Smoke Ball Co.",
		Citation:         "(1893) 1 QB 256",
		Court:            "Court of Appeal",
		Year:             1893,
		Principle:        "Unilateral contracts and general offers to public",
		RelevantSections: []string{"Section 8"},
		Keywords:         []string{"unilateral", "offer", "public", "acceptance"},
		Category:         "contract_formation",
	},
	{
		Title:            "Hadley v. Baxendale",
		Citation:         "(1854) 9 Exch 341",
		Court:            "Court of Exchequer",
		Year:             1854,
		Principle:        "Rule for remoteness of damages",
		RelevantSections: []string{"Section 73"},
		Keywords:         []string{"damages", "remoteness", "breach", "compensation"},
		Category:         "contract_remedies",
	},
}

// FindApplicableStatutes returns every statute whose applicability list
// contains dt, in declaration order.
func FindApplicableStatutes(dt DocumentType) []Statute {
	var out []Statute
	for _, s := range Statutes {
		for _, d := range s.ApplicableDocuments {
			if d == dt {
				out = append(out, s)
				break
			}
		}
	}
	return out
}

// FindRelevantCases returns up to three cases with at least one keyword
// present in content. Matching is case-insensitive substring containment.
func FindRelevantCases(content string) []LegalCase {
	lower := strings.ToLower(content)
	var out []LegalCase
	for _, c := range LegalCases {
		for _, kw := range c.Keywords {
			if strings.Contains(lower, strings.ToLower(kw)) {
				out = append(out, c)
				break
			}
		}
		if len(out) == 3 {
			break
		}
	}
	return out
}
