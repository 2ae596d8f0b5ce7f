package countries

// iso3 maps ISO 3166-1 alpha-3 codes to the country names we accept,
// the first name being the short English name. Kosovo uses the
// user-assigned XKX code, which is what most datasets do.
var iso3 = []entry{
	{"AFG", []string{"Afghanistan"}},
	{"ALA", []string{"Aland Islands", "Åland Islands"}},
	{"ALB", []string{"Albania"}},
	{"DZA", []string{"Algeria"}},
	{"ASM", []string{"American Samoa"}},
	{"AND", []string{"Andorra"}},
	{"AGO", []string{"Angola"}},
	{"AIA", []string{"Anguilla"}},
	{"ATA", []string{"Antarctica"}},
	{"ATG", []string{"Antigua and Barbuda"}},
	{"ARG", []string{"Argentina"}},
	{"ARM", []string{"Armenia"}},
	{"ABW", []string{"Aruba"}},
	{"AUS", []string{"Australia"}},
	{"AUT", []string{"Austria"}},
	{"AZE", []string{"Azerbaijan"}},
	{"BHS", []string{"Bahamas", "The Bahamas"}},
	{"BHR", []string{"Bahrain"}},
	{"BGD", []string{"Bangladesh"}},
	{"BRB", []string{"Barbados"}},
	{"BLR", []string{"Belarus"}},
	{"BEL", []string{"Belgium"}},
	{"BLZ", []string{"Belize"}},
	{"BEN", []string{"Benin"}},
	{"BMU", []string{"Bermuda"}},
	{"BTN", []string{"Bhutan"}},
	{"BOL", []string{"Bolivia", "Bolivia, Plurinational State of"}},
	{"BES", []string{"Bonaire Sint Eustatius and Saba", "Bonaire, Sint Eustatius and Saba", "Caribbean Netherlands"}},
	{"BIH", []string{"Bosnia and Herzegovina"}},
	{"BWA", []string{"Botswana"}},
	{"BVT", []string{"Bouvet Island"}},
	{"BRA", []string{"Brazil"}},
	{"IOT", []string{"British Indian Ocean Territory"}},
	{"VGB", []string{"British Virgin Islands", "Virgin Islands, British"}},
	{"BRN", []string{"Brunei", "Brunei Darussalam"}},
	{"BGR", []string{"Bulgaria"}},
	{"BFA", []string{"Burkina Faso"}},
	{"BDI", []string{"Burundi"}},
	{"CPV", []string{"Cape Verde", "Cabo Verde"}},
	{"KHM", []string{"Cambodia"}},
	{"CMR", []string{"Cameroon"}},
	{"CAN", []string{"Canada"}},
	{"CYM", []string{"Cayman Islands"}},
	{"CAF", []string{"Central African Republic"}},
	{"TCD", []string{"Chad"}},
	{"CHL", []string{"Chile"}},
	{"CHN", []string{"China"}},
	{"CXR", []string{"Christmas Island"}},
	{"CCK", []string{"Cocos Islands", "Cocos (Keeling) Islands"}},
	{"COL", []string{"Colombia"}},
	{"COM", []string{"Comoros"}},
	{"COG", []string{"Congo", "Republic of the Congo", "Congo-Brazzaville"}},
	{"COD", []string{"Democratic Republic of Congo", "Democratic Republic of the Congo", "Congo, The Democratic Republic of the", "DR Congo", "Congo-Kinshasa"}},
	{"COK", []string{"Cook Islands"}},
	{"CRI", []string{"Costa Rica"}},
	{"CIV", []string{"Cote d'Ivoire", "Côte d'Ivoire", "Ivory Coast"}},
	{"HRV", []string{"Croatia"}},
	{"CUB", []string{"Cuba"}},
	{"CUW", []string{"Curacao", "Curaçao"}},
	{"CYP", []string{"Cyprus"}},
	{"CZE", []string{"Czechia", "Czech Republic"}},
	{"DNK", []string{"Denmark"}},
	{"DJI", []string{"Djibouti"}},
	{"DMA", []string{"Dominica"}},
	{"DOM", []string{"Dominican Republic"}},
	{"ECU", []string{"Ecuador"}},
	{"EGY", []string{"Egypt"}},
	{"SLV", []string{"El Salvador"}},
	{"GNQ", []string{"Equatorial Guinea"}},
	{"ERI", []string{"Eritrea"}},
	{"EST", []string{"Estonia"}},
	{"SWZ", []string{"Eswatini", "Swaziland"}},
	{"ETH", []string{"Ethiopia"}},
	{"FLK", []string{"Falkland Islands", "Falkland Islands (Malvinas)"}},
	{"FRO", []string{"Faroe Islands", "Faeroe Islands"}},
	{"FJI", []string{"Fiji"}},
	{"FIN", []string{"Finland"}},
	{"FRA", []string{"France"}},
	{"GUF", []string{"French Guiana"}},
	{"PYF", []string{"French Polynesia"}},
	{"ATF", []string{"French Southern Territories"}},
	{"GAB", []string{"Gabon"}},
	{"GMB", []string{"Gambia", "The Gambia"}},
	{"GEO", []string{"Georgia"}},
	{"DEU", []string{"Germany"}},
	{"GHA", []string{"Ghana"}},
	{"GIB", []string{"Gibraltar"}},
	{"GRC", []string{"Greece"}},
	{"GRL", []string{"Greenland"}},
	{"GRD", []string{"Grenada"}},
	{"GLP", []string{"Guadeloupe"}},
	{"GUM", []string{"Guam"}},
	{"GTM", []string{"Guatemala"}},
	{"GGY", []string{"Guernsey"}},
	{"GIN", []string{"Guinea"}},
	{"GNB", []string{"Guinea-Bissau"}},
	{"GUY", []string{"Guyana"}},
	{"HTI", []string{"Haiti"}},
	{"HMD", []string{"Heard Island and McDonald Islands"}},
	{"VAT", []string{"Vatican", "Holy See", "Vatican City"}},
	{"HND", []string{"Honduras"}},
	{"HKG", []string{"Hong Kong"}},
	{"HUN", []string{"Hungary"}},
	{"ISL", []string{"Iceland"}},
	{"IND", []string{"India"}},
	{"IDN", []string{"Indonesia"}},
	{"IRN", []string{"Iran", "Iran, Islamic Republic of"}},
	{"IRQ", []string{"Iraq"}},
	{"IRL", []string{"Ireland"}},
	{"IMN", []string{"Isle of Man"}},
	{"ISR", []string{"Israel"}},
	{"ITA", []string{"Italy"}},
	{"JAM", []string{"Jamaica"}},
	{"JPN", []string{"Japan"}},
	{"JEY", []string{"Jersey"}},
	{"JOR", []string{"Jordan"}},
	{"KAZ", []string{"Kazakhstan"}},
	{"KEN", []string{"Kenya"}},
	{"KIR", []string{"Kiribati"}},
	{"PRK", []string{"North Korea", "Korea, Democratic People's Republic of", "DPRK"}},
	{"KOR", []string{"South Korea", "Korea, Republic of", "Korea", "Republic of Korea"}},
	{"XKX", []string{"Kosovo"}},
	{"KWT", []string{"Kuwait"}},
	{"KGZ", []string{"Kyrgyzstan"}},
	{"LAO", []string{"Laos", "Lao People's Democratic Republic"}},
	{"LVA", []string{"Latvia"}},
	{"LBN", []string{"Lebanon"}},
	{"LSO", []string{"Lesotho"}},
	{"LBR", []string{"Liberia"}},
	{"LBY", []string{"Libya"}},
	{"LIE", []string{"Liechtenstein"}},
	{"LTU", []string{"Lithuania"}},
	{"LUX", []string{"Luxembourg"}},
	{"MAC", []string{"Macao", "Macau"}},
	{"MDG", []string{"Madagascar"}},
	{"MWI", []string{"Malawi"}},
	{"MYS", []string{"Malaysia"}},
	{"MDV", []string{"Maldives"}},
	{"MLI", []string{"Mali"}},
	{"MLT", []string{"Malta"}},
	{"MHL", []string{"Marshall Islands"}},
	{"MTQ", []string{"Martinique"}},
	{"MRT", []string{"Mauritania"}},
	{"MUS", []string{"Mauritius"}},
	{"MYT", []string{"Mayotte"}},
	{"MEX", []string{"Mexico"}},
	{"FSM", []string{"Micronesia", "Micronesia (country)", "Micronesia, Federated States of"}},
	{"MDA", []string{"Moldova", "Moldova, Republic of"}},
	{"MCO", []string{"Monaco"}},
	{"MNG", []string{"Mongolia"}},
	{"MNE", []string{"Montenegro"}},
	{"MSR", []string{"Montserrat"}},
	{"MAR", []string{"Morocco"}},
	{"MOZ", []string{"Mozambique"}},
	{"MMR", []string{"Myanmar", "Burma"}},
	{"NAM", []string{"Namibia"}},
	{"NRU", []string{"Nauru"}},
	{"NPL", []string{"Nepal"}},
	{"NLD", []string{"Netherlands", "The Netherlands"}},
	{"NCL", []string{"New Caledonia"}},
	{"NZL", []string{"New Zealand"}},
	{"NIC", []string{"Nicaragua"}},
	{"NER", []string{"Niger"}},
	{"NGA", []string{"Nigeria"}},
	{"NIU", []string{"Niue"}},
	{"NFK", []string{"Norfolk Island"}},
	{"MKD", []string{"North Macedonia", "Macedonia"}},
	{"MNP", []string{"Northern Mariana Islands"}},
	{"NOR", []string{"Norway"}},
	{"OMN", []string{"Oman"}},
	{"PAK", []string{"Pakistan"}},
	{"PLW", []string{"Palau"}},
	{"PSE", []string{"Palestine", "Palestine, State of"}},
	{"PAN", []string{"Panama"}},
	{"PNG", []string{"Papua New Guinea"}},
	{"PRY", []string{"Paraguay"}},
	{"PER", []string{"Peru"}},
	{"PHL", []string{"Philippines"}},
	{"PCN", []string{"Pitcairn", "Pitcairn Islands"}},
	{"POL", []string{"Poland"}},
	{"PRT", []string{"Portugal"}},
	{"PRI", []string{"Puerto Rico"}},
	{"QAT", []string{"Qatar"}},
	{"REU", []string{"Reunion", "Réunion"}},
	{"ROU", []string{"Romania"}},
	{"RUS", []string{"Russia", "Russian Federation"}},
	{"RWA", []string{"Rwanda"}},
	{"BLM", []string{"Saint Barthelemy", "Saint Barthélemy"}},
	{"SHN", []string{"Saint Helena", "Saint Helena, Ascension and Tristan da Cunha"}},
	{"KNA", []string{"Saint Kitts and Nevis"}},
	{"LCA", []string{"Saint Lucia"}},
	{"MAF", []string{"Saint Martin", "Saint Martin (French part)"}},
	{"SPM", []string{"Saint Pierre and Miquelon"}},
	{"VCT", []string{"Saint Vincent and the Grenadines"}},
	{"WSM", []string{"Samoa"}},
	{"SMR", []string{"San Marino"}},
	{"STP", []string{"Sao Tome and Principe", "São Tomé and Príncipe"}},
	{"SAU", []string{"Saudi Arabia"}},
	{"SEN", []string{"Senegal"}},
	{"SRB", []string{"Serbia"}},
	{"SYC", []string{"Seychelles"}},
	{"SLE", []string{"Sierra Leone"}},
	{"SGP", []string{"Singapore"}},
	{"SXM", []string{"Sint Maarten", "Sint Maarten (Dutch part)"}},
	{"SVK", []string{"Slovakia", "Slovak Republic"}},
	{"SVN", []string{"Slovenia"}},
	{"SLB", []string{"Solomon Islands"}},
	{"SOM", []string{"Somalia"}},
	{"ZAF", []string{"South Africa"}},
	{"SGS", []string{"South Georgia and the South Sandwich Islands"}},
	{"SSD", []string{"South Sudan"}},
	{"ESP", []string{"Spain"}},
	{"LKA", []string{"Sri Lanka"}},
	{"SDN", []string{"Sudan"}},
	{"SUR", []string{"Suriname"}},
	{"SJM", []string{"Svalbard and Jan Mayen"}},
	{"SWE", []string{"Sweden"}},
	{"CHE", []string{"Switzerland"}},
	{"SYR", []string{"Syria", "Syrian Arab Republic"}},
	{"TWN", []string{"Taiwan", "Taiwan, Province of China"}},
	{"TJK", []string{"Tajikistan"}},
	{"TZA", []string{"Tanzania", "Tanzania, United Republic of"}},
	{"THA", []string{"Thailand"}},
	{"TLS", []string{"Timor", "Timor-Leste", "East Timor"}},
	{"TGO", []string{"Togo"}},
	{"TKL", []string{"Tokelau"}},
	{"TON", []string{"Tonga"}},
	{"TTO", []string{"Trinidad and Tobago"}},
	{"TUN", []string{"Tunisia"}},
	{"TUR", []string{"Turkey", "Türkiye", "Turkiye"}},
	{"TKM", []string{"Turkmenistan"}},
	{"TCA", []string{"Turks and Caicos Islands"}},
	{"TUV", []string{"Tuvalu"}},
	{"UGA", []string{"Uganda"}},
	{"UKR", []string{"Ukraine"}},
	{"ARE", []string{"United Arab Emirates", "UAE"}},
	{"GBR", []string{"United Kingdom", "UK", "Great Britain", "United Kingdom of Great Britain and Northern Ireland"}},
	{"USA", []string{"United States", "United States of America", "USA", "US"}},
	{"UMI", []string{"United States Minor Outlying Islands"}},
	{"VIR", []string{"United States Virgin Islands", "Virgin Islands, U.S."}},
	{"URY", []string{"Uruguay"}},
	{"UZB", []string{"Uzbekistan"}},
	{"VUT", []string{"Vanuatu"}},
	{"VEN", []string{"Venezuela", "Venezuela, Bolivarian Republic of"}},
	{"VNM", []string{"Vietnam", "Viet Nam"}},
	{"WLF", []string{"Wallis and Futuna"}},
	{"ESH", []string{"Western Sahara"}},
	{"YEM", []string{"Yemen"}},
	{"ZMB", []string{"Zambia"}},
	{"ZWE", []string{"Zimbabwe"}},
}
