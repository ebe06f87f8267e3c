// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package preprocess

// SampleDocument is the fixed fallback agreement used when input cannot be
// analyzed. It exercises every analysis stage: classification signals, GST
// and TDS references, rupee amounts, arbitration and jurisdiction clauses.
const SampleDocument = `SERVICE AGREEMENT

This Service Agreement is entered into on 1 April 2024 between ABC Technologies Private Limited, a company incorporated under the Companies Act, 2013 having its registered office at Mumbai, Maharashtra ("Service Provider") and XYZ Corporation ("Client").

WHEREAS, the Service Provider is engaged in providing software development services and has the necessary expertise and resources;

WHEREAS, the Client desires to engage the Service Provider for software development services;

NOW THEREFORE, in consideration of the mutual covenants contained herein, the parties agree as follows:

1. SCOPE OF SERVICES
The Service Provider shall provide software development services including but not limited to:
- Web application development using modern frameworks
- Database design and implementation
- API development and integration
- Testing and quality assurance

2. PAYMENT TERMS
- Total contract value: ₹5,00,000 (Rupees Five Lakhs only)
- Payment schedule: 50% advance, 50% on completion
- All amounts are inclusive of applicable GST
- TDS shall be deducted as per Income Tax Act, 1961

3. GST COMPLIANCE
- Service Provider GST No: 27AABCS1234C1Z5
- Client GST No: 27AABCC5678D1Z8
- GST @ 18% shall be charged extra on all invoices
- Place of supply: Maharashtra

4. INTELLECTUAL PROPERTY
All intellectual property rights in the deliverables shall vest with the Client upon receipt of full payment as per the Copyright Act, 1957.

5. CONFIDENTIALITY
Both parties agree to maintain confidentiality of all proprietary information shared during the course of this agreement.

6. TERMINATION
Either party may terminate this agreement with 30 days written notice as per Section 64 of the Indian Contract Act, 1872.

7. FORCE MAJEURE
Neither party shall be liable for delays caused by circumstances beyond their reasonable control including natural calamities, government actions, or pandemic situations.

8. DISPUTE RESOLUTION
Any disputes arising out of this agreement shall be resolved through arbitration under the Arbitration and Conciliation Act, 2015. The seat of arbitration shall be Mumbai, Maharashtra.

9. GOVERNING LAW
This agreement shall be governed by the laws of India and subject to the exclusive jurisdiction of courts in Mumbai, Maharashtra.

IN WITNESS WHEREOF, the parties have executed this agreement on the date first written above.

For ABC Technologies Pvt Ltd          For XYZ Corporation
_________________________            _________________________
Authorized Signatory                  Authorized Signatory`
