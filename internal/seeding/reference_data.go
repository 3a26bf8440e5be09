package seeding

// fieldNames lists the RESO lookup fields the seeder is responsible for, in
// processing order.
var fieldNames = [...]string{
	"LockBoxType", "SpecialLicenses", "PowerProductionType", "ReasonActiveOrDisabled", "Fencing",
	"GreenWaterConservation", "LotSizeSource", "ResourceName", "CoListAgentDesignation", "OfficeBranchType",
	"Languages", "GreenSustainability", "OpenHouseStatus", "AreaSource", "BuyerAgentDesignation",
	"HorseAmenities", "ListingService", "LotSizeUnits", "WaterSource", "LaundryFeatures", "Flooring",
	"Permission", "DoorFeatures", "MediaType", "WaterfrontFeatures", "AreaUnits", "Cooling", "PreferredPhone",
	"ExteriorFeatures", "HoursDaysOfOperation", "SecurityFeatures", "Skirt", "ActorType", "PreferredAddress",
	"LotDimensionsSource", "CoBuyerAgentDesignation", "PetsAllowed", "Country", "StreetDirection",
	"FinancialDataSource", "OccupantType", "OtherStructures", "AssociationAmenities", "BodyType",
	"CurrentFinancing", "PowerProductionAnnualStatus", "SearchQueryType", "ObjectType", "ListAgentDesignation",
	"RoomType", "RuleFormat", "TeamMemberType", "IncomeIncludes", "ImageOf", "GreenVerificationSource",
	"SpaFeatures", "MediaCategory", "ObjectIdType", "RoadSurfaceType", "ExistingLeaseType", "ContactListingPreference",
	"ParkingFeatures", "TeamStatus", "Edm.String", "PoolFeatures", "GreenIndoorAirQuality", "Sewer",
	"GreenVerificationStatus", "Appliances", "Heating", "StructureType", "ContactStatus", "BuyerFinancing",
	"ScheduleType", "OwnerPays", "ContactType", "EventType", "Basement", "CurrentUse", "BusinessType",
	"PatioAndPorchFeatures", "PropertyType", "OfficeStatus", "OfficeType", "RoadFrontageType", "ListingAgreement",
	"RoadResponsibility", "Utilities", "GreenEnergyGeneration", "ChangeType", "FireplaceFeatures",
	"WindowFeatures", "FeeFrequency", "SpecialListingConditions", "CommunityFeatures", "LeaseTerm",
	"MemberOtherPhoneType", "MemberDesignation", "GreenEnergyEfficient", "StateOrProvince", "CommonWalls",
	"RentIncludes", "NotedBy", "QueueTransactionType", "GreenBuildingVerificationType", "CommonInterest",
	"AssociationFeeIncludes", "SocialMediaType", "DeviceType", "SyndicateTo", "UnitTypeType", "AccessibilityFeatures",
	"ShowingContactType", "Vegetation", "CompensationType", "OtherPhoneType", "OwnershipType", "LinearUnits",
	"DirectionFaces", "Concessions", "LotFeatures", "PossibleUse", "Furnished", "StandardStatus",
	"OpenHouseType", "DailySchedule", "ConstructionMaterials", "Roof", "PropertyCondition", "ClassName",
	"FrontageType", "DevelopmentStatus", "EventTarget", "TenantPays", "ShowingRequirements", "ListingTerms",
	"UnitsFurnished", "Electric", "FoundationDetails", "Attended", "View", "TaxStatusCurrent", "PropertySubType",
	"LeaseRenewalCompensation", "MemberType", "YearBuiltSource", "Possession", "InteriorOrRoomFeatures",
	"Levels", "OtherEquipment", "OperatingExpenseIncludes", "MemberStatus", "LaborInformation",
}

// fallbackValues is used for any field without a reference entry.
var fallbackValues = [3]string{"Value1", "Value2", "Value3"}

// referenceValues holds the three display values seeded for each field.
// StreetDirection carries the first three compass points only.
var referenceValues = map[string][3]string{
	"LockBoxType":                   {"Electronic", "Combination", "Key"},
	"SpecialLicenses":               {"Broker", "Agent", "Appraiser"},
	"PowerProductionType":           {"Solar", "Wind", "Geothermal"},
	"ReasonActiveOrDisabled":        {"Retired", "Suspended", "Inactive"},
	"Fencing":                       {"Wood", "Chain Link", "Wrought Iron"},
	"GreenWaterConservation":        {"Low Flow", "Rainwater Collection", "Gray Water System"},
	"LotSizeSource":                 {"Assessor", "Survey", "Measured"},
	"ResourceName":                  {"Property", "Member", "Office"},
	"CoListAgentDesignation":        {"CRS", "GRI", "ABR"},
	"OfficeBranchType":              {"Main", "Satellite", "Virtual"},
	"Languages":                     {"English", "Spanish", "French"},
	"GreenSustainability":           {"LEED", "Energy Star", "Green Building"},
	"OpenHouseStatus":               {"Active", "Canceled", "Completed"},
	"AreaSource":                    {"Assessor", "Appraiser", "Builder"},
	"BuyerAgentDesignation":         {"CRS", "GRI", "ABR"},
	"HorseAmenities":                {"Barn", "Paddock", "Arena"},
	"ListingService":                {"MLS", "Private", "Exclusive"},
	"LotSizeUnits":                  {"Acres", "SquareFeet", "SquareMeters"},
	"WaterSource":                   {"Municipal", "Well", "Cistern"},
	"LaundryFeatures":               {"InUnit", "HookupOnly", "CommonArea"},
	"Flooring":                      {"Hardwood", "Carpet", "Tile"},
	"Permission":                    {"ReadOnly", "ReadWrite", "Admin"},
	"DoorFeatures":                  {"French", "Sliding", "Steel"},
	"MediaType":                     {"Photo", "Video", "VirtualTour"},
	"WaterfrontFeatures":            {"Ocean", "Lake", "River"},
	"AreaUnits":                     {"SquareFeet", "SquareMeters", "Acres"},
	"Cooling":                       {"Central", "WindowUnits", "Evaporative"},
	"PreferredPhone":                {"Mobile", "Home", "Work"},
	"ExteriorFeatures":              {"Deck", "Patio", "Pool"},
	"HoursDaysOfOperation":          {"Weekdays", "Weekends", "24Hours"},
	"SecurityFeatures":              {"Alarm", "Cameras", "Gated"},
	"Skirt":                         {"Brick", "Vinyl", "None"},
	"ActorType":                     {"Individual", "Organization", "System"},
	"PreferredAddress":              {"Home", "Work", "Mailing"},
	"LotDimensionsSource":           {"Assessor", "Survey", "Measured"},
	"CoBuyerAgentDesignation":       {"CRS", "GRI", "ABR"},
	"PetsAllowed":                   {"Yes", "No", "Restricted"},
	"Country":                       {"US", "CA", "MX"},
	"StreetDirection":               {"N", "S", "E"},
	"FinancialDataSource":           {"Owner", "Assessor", "Accountant"},
	"OccupantType":                  {"Owner", "Tenant", "Vacant"},
	"OtherStructures":               {"Shed", "Garage", "Workshop"},
	"AssociationAmenities":          {"Pool", "Clubhouse", "Gym"},
	"BodyType":                      {"Manufactured", "Modular", "SiteBuilt"},
	"CurrentFinancing":              {"Conventional", "FHA", "VA"},
	"PowerProductionAnnualStatus":   {"Actual", "Estimated", "PartiallyEstimated"},
	"SearchQueryType":               {"Property", "Member", "Office"},
	"ObjectType":                    {"Property", "Member", "Office"},
	"ListAgentDesignation":          {"CRS", "GRI", "ABR"},
	"RoomType":                      {"Bedroom", "Bathroom", "Kitchen"},
	"RuleFormat":                    {"Standard", "Custom", "Legacy"},
	"TeamMemberType":                {"Leader", "Member", "Assistant"},
	"IncomeIncludes":                {"Rent", "Utilities", "Parking"},
	"ImageOf":                       {"Property", "Member", "Office"},
	"GreenVerificationSource":       {"LEED", "Energy Star", "HERS"},
	"SpaFeatures":                   {"Indoor", "Outdoor", "Heated"},
	"MediaCategory":                 {"Primary", "FloorPlan", "Map"},
	"ObjectIdType":                  {"MLS", "UUID", "Custom"},
	"RoadSurfaceType":               {"Paved", "Gravel", "Dirt"},
	"ExistingLeaseType":             {"Annual", "Monthly", "Weekly"},
	"ContactListingPreference":      {"Email", "Phone", "Mail"},
	"ParkingFeatures":               {"Garage", "Carport", "Street"},
	"TeamStatus":                    {"Active", "Inactive", "Pending"},
	"Edm.String":                    {"String1", "String2", "String3"},
	"PoolFeatures":                  {"Indoor", "Outdoor", "Heated"},
	"GreenIndoorAirQuality":         {"Low VOC", "Air Filtration", "Ventilation"},
	"Sewer":                         {"Municipal", "Septic", "None"},
	"GreenVerificationStatus":       {"Complete", "InProcess", "Pending"},
	"Appliances":                    {"Refrigerator", "Stove", "Dishwasher"},
	"Heating":                       {"Forced Air", "Radiant", "Baseboard"},
	"StructureType":                 {"House", "Condo", "Townhouse"},
	"ContactStatus":                 {"Active", "Inactive", "Lead"},
	"BuyerFinancing":                {"Cash", "Conventional", "FHA"},
	"ScheduleType":                  {"Daily", "Weekly", "Monthly"},
	"OwnerPays":                     {"HOA", "Utilities", "Insurance"},
	"ContactType":                   {"Client", "Lead", "Prospect"},
	"EventType":                     {"Open House", "Tour", "Showing"},
	"Basement":                      {"Full", "Partial", "None"},
	"CurrentUse":                    {"Residential", "Commercial", "Mixed"},
	"BusinessType":                  {"Retail", "Service", "Manufacturing"},
	"PatioAndPorchFeatures":         {"Covered", "Screened", "Open"},
	"PropertyType":                  {"Residential", "Commercial", "Land"},
	"OfficeStatus":                  {"Active", "Inactive", "Pending"},
	"OfficeType":                    {"Main", "Branch", "Virtual"},
	"RoadFrontageType":              {"Public", "Private", "None"},
	"ListingAgreement":              {"Exclusive", "Open", "Variable"},
	"RoadResponsibility":            {"Public", "Private", "HOA"},
	"Utilities":                     {"Electric", "Gas", "Water"},
	"GreenEnergyGeneration":         {"Solar", "Wind", "Geothermal"},
	"ChangeType":                    {"Add", "Update", "Delete"},
	"FireplaceFeatures":             {"Wood", "Gas", "Electric"},
	"WindowFeatures":                {"Double Pane", "Tinted", "Security"},
	"FeeFrequency":                  {"Monthly", "Annual", "Quarterly"},
	"SpecialListingConditions":      {"Short Sale", "Foreclosure", "Standard"},
	"CommunityFeatures":             {"Pool", "Clubhouse", "Tennis"},
	"LeaseTerm":                     {"Annual", "Monthly", "Seasonal"},
	"MemberOtherPhoneType":          {"Mobile", "Home", "Work"},
	"MemberDesignation":             {"CRS", "GRI", "ABR"},
	"GreenEnergyEfficient":          {"Energy Star", "Solar", "Insulation"},
	"StateOrProvince":               {"CA", "TX", "NY"},
	"CommonWalls":                   {"None", "One", "Two"},
	"RentIncludes":                  {"Utilities", "Parking", "Cable"},
	"NotedBy":                       {"System", "User", "Admin"},
	"QueueTransactionType":          {"Add", "Update", "Delete"},
	"GreenBuildingVerificationType": {"LEED", "Energy Star", "HERS"},
	"CommonInterest":                {"Condominium", "HOA", "PUD"},
	"AssociationFeeIncludes":        {"Water", "Trash", "Insurance"},
	"SocialMediaType":               {"Facebook", "Twitter", "Instagram"},
	"DeviceType":                    {"Mobile", "Desktop", "Tablet"},
	"SyndicateTo":                   {"Zillow", "Realtor", "Trulia"},
	"UnitTypeType":                  {"Flat", "Townhouse", "Duplex"},
	"AccessibilityFeatures":         {"Elevator", "Ramp", "WideDoorways"},
	"ShowingContactType":            {"Listing Agent", "Owner", "Tenant"},
	"Vegetation":                    {"Trees", "Grass", "Desert"},
	"CompensationType":              {"Percentage", "Flat Fee", "Split"},
	"OtherPhoneType":                {"Mobile", "Home", "Work"},
	"OwnershipType":                 {"Fee Simple", "Leasehold", "Cooperative"},
	"LinearUnits":                   {"Feet", "Meters", "Miles"},
	"DirectionFaces":                {"North", "South", "East"},
	"Concessions":                   {"Seller Credit", "Closing Costs", "Repairs"},
	"LotFeatures":                   {"Corner", "Cul-de-sac", "Wooded"},
	"PossibleUse":                   {"Residential", "Commercial", "Agricultural"},
	"Furnished":                     {"Fully", "Partially", "Unfurnished"},
	"StandardStatus":                {"Active", "Pending", "Sold"},
	"OpenHouseType":                 {"Public", "Broker", "Virtual"},
	"DailySchedule":                 {"Morning", "Afternoon", "Evening"},
	"ConstructionMaterials":         {"Wood", "Brick", "Stucco"},
	"Roof":                          {"Shingle", "Tile", "Metal"},
	"PropertyCondition":             {"Excellent", "Good", "Fair"},
	"ClassName":                     {"Residential", "Commercial", "Land"},
	"FrontageType":                  {"Road", "Water", "Golf"},
	"DevelopmentStatus":             {"Existing", "UnderConstruction", "Proposed"},
	"EventTarget":                   {"Property", "Member", "Office"},
	"TenantPays":                    {"Utilities", "Lawn Care", "Repairs"},
	"ShowingRequirements":           {"Appointment", "LockBox", "CallFirst"},
	"ListingTerms":                  {"Cash", "Conventional", "FHA"},
	"UnitsFurnished":                {"All", "Some", "None"},
	"Electric":                      {"Public", "Solar", "Generator"},
	"FoundationDetails":             {"Slab", "Crawl Space", "Basement"},
	"Attended":                      {"Yes", "No", "Optional"},
	"View":                          {"Water", "Mountain", "City"},
	"TaxStatusCurrent":              {"Current", "Delinquent", "Exempt"},
	"PropertySubType":               {"SingleFamily", "Condo", "Townhouse"},
	"LeaseRenewalCompensation":      {"Full", "Half", "None"},
	"MemberType":                    {"Agent", "Broker", "Appraiser"},
	"YearBuiltSource":               {"Assessor", "Owner", "Estimated"},
	"Possession":                    {"AtClosing", "Negotiable", "ToBeArranged"},
	"InteriorOrRoomFeatures":        {"Fireplace", "Hardwood", "Updated"},
	"Levels":                        {"One", "Two", "Three"},
	"OtherEquipment":                {"Generator", "Security System", "Sprinklers"},
	"OperatingExpenseIncludes":      {"Utilities", "Maintenance", "Insurance"},
	"MemberStatus":                  {"Active", "Inactive", "Pending"},
	"LaborInformation":              {"Union", "Non-Union", "Mixed"},
}
