// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package knowledge

// LegalTerms is the Indian legal terminology dictionary. Weights are in
// [0,1] and feed directly into term scoring, so additions here shift scores
// across every analysis.
var LegalTerms = []LegalTerm{
	// Indian Contract Act 1872
	{
		Term:       "agreement",
		Category:   "contract_formation",
		Weight:     0.95,
		Synonyms:   []string{"contract", "pact", "accord", "understanding", "samjhauta"},
		Definition: "A legally binding arrangement between parties under Indian Contract Act 1872",
		Importance: ImportanceCritical,
		StatuteRef: "Section 2(e) of Indian Contract Act, 1872",
	},
	{
		Term:       "consideration",
		Category:   "contract_formation",
		Weight:     0.95,
		Synonyms:   []string{"quid pro quo", "pratiphal", "compensation"},
		Definition: "Something in return as per Section 2(d) of Indian Contract Act",
		Importance: ImportanceCritical,
		StatuteRef: "Section 2(d), 10, 25 of Indian Contract Act, 1872",
	},
	{
		Term:       "free consent",
		Category:   "contract_formation",
		Weight:     0.9,
		Synonyms:   []string{"voluntary consent", "swatantra sahmat"},
		Definition: "Consent not caused by coercion, undue influence, fraud, misrepresentation or mistake",
		Importance: ImportanceCritical,
		StatuteRef: "Section 13, 14-18 of Indian Contract Act, 1872",
	},
	{
		Term:       "void agreement",
		Category:   "contract_validity",
		Weight:     0.9,
		Synonyms:   []string{"invalid contract", "shunya samjhauta"},
		Definition: "Agreement not enforceable by law under Section 2(g)",
		Importance: ImportanceCritical,
		StatuteRef: "Section 2(g), 24-30 of Indian Contract Act, 1872",
	},
	{
		Term:       "voidable contract",
		Category:   "contract_validity",
		Weight:     0.85,
		Synonyms:   []string{"avoidable contract"},
		Definition: "Contract enforceable at the option of one party",
		Importance: ImportanceHigh,
		StatuteRef: "Section 2(i), 19 of Indian Contract Act, 1872",
	},

	// Taxation
	{
		Term:       "goods and services tax",
		Category:   "taxation",
		Weight:     0.9,
		Synonyms:   []string{"gst", "mal aur seva kar"},
		Definition: "Unified indirect tax system in India",
		Importance: ImportanceCritical,
		StatuteRef: "GST Act, 2017",
	},
	{
		Term:       "tds",
		Category:   "taxation",
		Weight:     0.85,
		Synonyms:   []string{"tax deducted at source", "srot par kat gaya kar"},
		Definition: "Tax collection mechanism under Income Tax Act",
		Importance: ImportanceHigh,
		StatuteRef: "Chapter XVII-B of Income Tax Act, 1961",
	},
	{
		Term:       "advance tax",
		Category:   "taxation",
		Weight:     0.8,
		Synonyms:   []string{"pay as you earn", "agrim kar"},
		Definition: "Tax paid in advance during the financial year",
		Importance: ImportanceMedium,
		StatuteRef: "Section 208 of Income Tax Act, 1961",
	},

	// Employment and labor law
	{
		Term:       "provident fund",
		Category:   "employment",
		Weight:     0.85,
		Synonyms:   []string{"pf", "bhavishya nidhi"},
		Definition: "Retirement savings scheme under EPF Act",
		Importance: ImportanceHigh,
		StatuteRef: "Employees Provident Fund Act, 1952",
	},
	{
		Term:       "gratuity",
		Category:   "employment",
		Weight:     0.8,
		Synonyms:   []string{"upadan"},
		Definition: "Lump sum payment to employee on retirement/resignation",
		Importance: ImportanceHigh,
		StatuteRef: "Payment of Gratuity Act, 1972",
	},
	{
		Term:       "notice period",
		Category:   "employment",
		Weight:     0.8,
		Synonyms:   []string{"advance notice", "poorv suchna"},
		Definition: "Period of notice before termination of employment",
		Importance: ImportanceHigh,
		StatuteRef: "Industrial Disputes Act, 1947",
	},

	// Property and real estate
	{
		Term:       "stamp duty",
		Category:   "property",
		Weight:     0.85,
		Synonyms:   []string{"mudrank shulk"},
		Definition: "Tax on legal documents under Indian Stamp Act",
		Importance: ImportanceHigh,
		StatuteRef: "Indian Stamp Act, 1899",
	},
	{
		Term:       "registration",
		Category:   "property",
		Weight:     0.9,
		Synonyms:   []string{"panjikaran"},
		Definition: "Mandatory registration of documents under Registration Act",
		Importance: ImportanceCritical,
		StatuteRef: "Registration Act, 1908",
	},
	{
		Term:       "power of attorney",
		Category:   "property",
		Weight:     0.8,
		Synonyms:   []string{"mukhtarnama", "attorney letter"},
		Definition: "Legal authorization to act on behalf of another",
		Importance: ImportanceHigh,
		StatuteRef: "Powers of Attorney Act, 1882",
	},

	// Corporate law
	{
		Term:       "memorandum of association",
		Category:   "corporate",
		Weight:     0.9,
		Synonyms:   []string{"moa", "sangh gyapan"},
		Definition: "Charter document of a company",
		Importance: ImportanceCritical,
		StatuteRef: "Section 4 of Companies Act, 2013",
	},
	{
		Term:       "articles of association",
		Category:   "corporate",
		Weight:     0.85,
		Synonyms:   []string{"aoa", "sangh niyam"},
		Definition: "Rules and regulations for company management",
		Importance: ImportanceHigh,
		StatuteRef: "Section 5 of Companies Act, 2013",
	},
	{
		Term:       "board resolution",
		Category:   "corporate",
		Weight:     0.8,
		Synonyms:   []string{"directors resolution", "board ka faisla"},
		Definition: "Formal decision taken by board of directors",
		Importance: ImportanceHigh,
		StatuteRef: "Section 179 of Companies Act, 2013",
	},

	// Intellectual property
	{
		Term:       "trademark",
		Category:   "ip",
		Weight:     0.85,
		Synonyms:   []string{"trade mark", "vyapar chinh"},
		Definition: "Distinctive sign identifying goods/services",
		Importance: ImportanceHigh,
		StatuteRef: "Trade Marks Act, 1999",
	},
	{
		Term:       "copyright",
		Category:   "ip",
		Weight:     0.85,
		Synonyms:   []string{"swatva adhikar", "pratilipi adhikar"},
		Definition: "Exclusive rights to creative works",
		Importance: ImportanceHigh,
		StatuteRef: "Copyright Act, 1957",
	},
	{
		Term:       "patent",
		Category:   "ip",
		Weight:     0.85,
		Synonyms:   []string{"ekatantra", "patent adhikar"},
		Definition: "Exclusive rights to inventions",
		Importance: ImportanceHigh,
		StatuteRef: "Patents Act, 1970",
	},

	// Banking and finance
	{
		Term:       "negotiable instrument",
		Category:   "banking",
		Weight:     0.85,
		Synonyms:   []string{"hastantaraniya patra"},
		Definition: "Document guaranteeing payment of specific amount",
		Importance: ImportanceHigh,
		StatuteRef: "Negotiable Instruments Act, 1881",
	},
	{
		Term:       "cheque bounce",
		Category:   "banking",
		Weight:     0.8,
		Synonyms:   []string{"dishonour of cheque", "check wapsi"},
		Definition: "Failure of cheque payment due to insufficient funds",
		Importance: ImportanceHigh,
		StatuteRef: "Section 138 of Negotiable Instruments Act, 1881",
	},
	{
		Term:       "promissory note",
		Category:   "banking",
		Weight:     0.8,
		Synonyms:   []string{"vaada patra"},
		Definition: "Written promise to pay specific amount",
		Importance: ImportanceMedium,
		StatuteRef: "Section 4 of Negotiable Instruments Act, 1881",
	},

	// Consumer protection
	{
		Term:       "consumer",
		Category:   "consumer_protection",
		Weight:     0.8,
		Synonyms:   []string{"upbhokta"},
		Definition: "Person who buys goods or services for consideration",
		Importance: ImportanceHigh,
		StatuteRef: "Consumer Protection Act, 2019",
	},
	{
		Term:       "deficiency in service",
		Category:   "consumer_protection",
		Weight:     0.75,
		Synonyms:   []string{"seva mein kami"},
		Definition: "Fault, imperfection, shortcoming in quality of service",
		Importance: ImportanceMedium,
		StatuteRef: "Section 2(11) of Consumer Protection Act, 2019",
	},

	// Alternative dispute resolution
	{
		Term:       "arbitration",
		Category:   "dispute_resolution",
		Weight:     0.85,
		Synonyms:   []string{"madhyasthata", "panchayat"},
		Definition: "Private dispute resolution process",
		Importance: ImportanceHigh,
		StatuteRef: "Arbitration and Conciliation Act, 2015",
	},
	{
		Term:       "conciliation",
		Category:   "dispute_resolution",
		Weight:     0.8,
		Synonyms:   []string{"sulah", "samadhaan"},
		Definition: "Assisted negotiation process",
		Importance: ImportanceMedium,
		StatuteRef: "Arbitration and Conciliation Act, 2015",
	},
	{
		Term:       "lok adalat",
		Category:   "dispute_resolution",
		Weight:     0.8,
		Synonyms:   []string{"peoples court"},
		Definition: "Alternative dispute resolution mechanism",
		Importance: ImportanceMedium,
		StatuteRef: "Legal Services Authorities Act, 1987",
	},
}
