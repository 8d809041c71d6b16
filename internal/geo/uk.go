// Package geo holds the static UK place-name reference lists used by the
// autocomplete default state and the city/town category matching.
package geo

import "strings"

// Cities is the static UK city reference list.
var Cities = []string{
	"Aberdeen", "Armagh", "Bangor", "Bath", "Belfast", "Birmingham", "Bradford",
	"Brighton and Hove", "Bristol", "Cambridge", "Canterbury", "Cardiff", "Carlisle",
	"Chelmsford", "Chester", "Chichester", "Colchester", "Coventry", "Derby", "Doncaster",
	"Dundee", "Dunfermline", "Durham", "Edinburgh", "Ely", "Exeter", "Glasgow",
	"Gloucester", "Hereford", "Inverness", "Kingston upon Hull", "Lancaster", "Leeds",
	"Leicester", "Lichfield", "Lincoln", "Lisburn", "Liverpool", "London", "Londonderry",
	"Manchester", "Milton Keynes", "Newcastle upon Tyne", "Newport", "Newry", "Norwich",
	"Nottingham", "Oxford", "Perth", "Peterborough", "Plymouth", "Portsmouth", "Preston",
	"Ripon", "Salford", "Salisbury", "Sheffield", "Southampton", "Southend-on-Sea",
	"St Albans", "St Asaph (Llanelwy)", "St Davids", "Stirling", "Stoke-on-Trent",
	"Sunderland", "Swansea", "Truro", "Wakefield", "Wells", "Westminster", "Winchester",
	"Wolverhampton", "Worcester", "Wrexham", "York",
}

// Towns is the static UK town reference list.
var Towns = []string{
	"Abingdon", "Accrington", "Aldershot", "Alfreton", "Alloa", "Altrincham", "Amersham",
	"Andover", "Arbroath", "Ashford", "Ashington", "Ashton-under-Lyne", "Aylesbury", "Ayr",
	"Banbury", "Banstead", "Barnsley", "Barnstaple", "Barrow-in-Furness", "Barry", "Basildon",
	"Basingstoke", "Bathgate", "Batley", "Beaconsfield", "Bebington", "Bedford", "Bellshill",
	"Belper", "Berwick-upon-Tweed", "Beverley", "Bexhill-on-Sea", "Bicester", "Bideford",
	"Billericay", "Billingham", "Birkenhead", "Bishop Auckland", "Bishop's Stortford", "Blackburn",
	"Blackpool", "Blyth", "Bodmin", "Bognor Regis", "Bolton", "Bootle", "Borehamwood",
	"Boston", "Bournemouth", "Bracknell", "Braintree", "Brentwood", "Bridgwater", "Bridlington",
	"Bridport", "Brigg", "Brighouse", "Broadstairs", "Bromley", "Bromsgrove", "Brownhills",
	"Buckingham", "Burgess Hill", "Burnley", "Burton upon Trent", "Bury", "Bury St Edmunds",
	"Buxton", "Camberley", "Camborne", "Cambuslang", "Cannock", "Canvey Island", "Carluke",
	"Carnforth", "Carrickfergus", "Carshalton", "Castleford", "Caterham", "Chatham", "Cheadle",
	"Cheltenham", "Chepstow", "Chertsey", "Chesham", "Cheshunt", "Chester-le-Street", "Chesterfield",
	"Chippenham", "Chipping Sodbury", "Chorley", "Christchurch", "Cinderford", "Cirencester",
	"Clacton-on-Sea", "Cleethorpes", "Clevedon", "Clitheroe", "Clydebank", "Coatbridge",
	"Cockermouth", "Colne", "Colwyn Bay", "Congleton", "Consett", "Corby", "Cowdenbeath",
	"Cramlington", "Crawley", "Crewe", "Cromer", "Crowborough", "Croydon", "Cumbernauld",
	"Cwmbran", "Dagenham", "Dalkeith", "Darlington", "Dartford", "Daventry", "Dawlish",
	"Deal", "Denbigh", "Denton", "Dewsbury", "Didcot", "Dingwall", "Doncaster", "Dorchester",
	"Dorking", "Dover", "Downpatrick", "Driffield", "Droitwich", "Dromore", "Dumbarton",
	"Dumfries", "Dunbar", "Dunstable", "Durham", "Eastbourne", "Eastleigh", "Ebbw Vale",
	"Eccles", "Edenbridge", "Egham", "Elgin", "Ellesmere Port", "Ely", "Enniskillen",
	"Epping", "Epsom", "Erith", "Esher", "Evesham", "Exeter", "Exmouth", "Failsworth",
	"Falkirk", "Falmouth", "Fareham", "Farnborough", "Farnham", "Farnworth", "Faversham",
	"Felixstowe", "Ferryhill", "Filey", "Fleetwood", "Folkestone", "Formby", "Fraserburgh",
	"Frome", "Gainsborough", "Galashiels", "Gateshead", "Gillingham", "Girvan", "Glastonbury",
	"Glenrothes", "Glossop", "Godalming", "Golborne", "Goole", "Gosport", "Govan",
	"Grangemouth", "Grantham", "Gravesend", "Grays", "Greenock", "Gretna", "Grimsby",
	"Guisborough", "Hadleigh", "Hailsham", "Halesowen", "Halifax", "Hamilton", "Harlow",
	"Harpenden", "Harrogate", "Harrow", "Hartlepool", "Harwich", "Haslemere", "Haslingden",
	"Hastings", "Hatfield", "Havant", "Haverfordwest", "Haverhill", "Hawick", "Haxby",
	"Hayes", "Hayle", "Haywards Heath", "Heanor", "Hebburn", "Heckmondwike", "Helensburgh",
	"Helston", "Hemel Hempstead", "Henley-on-Thames", "Herne Bay", "Hertford", "Hessle",
	"Heswall", "Hexham", "Heywood", "High Wycombe", "Hinckley", "Hitchin", "Hoddesdon",
	"Holmfirth", "Holyhead", "Honiton", "Horley", "Hornchurch", "Hornsea", "Horsham",
	"Houghton-le-Spring", "Hove", "Huddersfield", "Hunstanton", "Huntingdon", "Hyde",
	"Hythe", "Ilford", "Ilfracombe", "Ilkeston", "Ilkley", "Immingham", "Inverurie",
	"Irvine", "Ivybridge", "Jarrow", "Johnstone", "Keighley", "Keith", "Kelso",
	"Kendal", "Kenilworth", "Keswick", "Kettering", "Keynsham", "Kidderminster", "Kilmarnock",
	"Kilwinning", "King's Lynn", "Kingsbridge", "Kingston upon Thames", "Kingswood", "Kirkby",
	"Kirkby in Ashfield", "Kirkcaldy", "Kirkham", "Kirkintilloch", "Knaresborough", "Knottingley",
	"Knutsford", "Lancing", "Lanark", "Largs", "Larkhall", "Larne", "Launceston",
	"Leamington Spa", "Leatherhead", "Ledbury", "Lee-on-the-Solent", "Leek", "Leigh",
	"Leigh-on-Sea", "Leighton Buzzard", "Leominster", "Lerwick", "Letchworth", "Leven",
	"Lewes", "Leyburn", "Leyland", "Lichfield", "Limavady", "Lincoln", "Linlithgow",
	"Lisburn", "Liskeard", "Littlehampton", "Liverpool", "Livingston", "Llanelli", "Llandudno",
	"Lochgelly", "Loftus", "Long Eaton", "Longridge", "Looe", "Lossiemouth", "Loughborough",
	"Loughton", "Louth", "Lowestoft", "Ludlow", "Lurgan", "Luton", "Lydney",
	"Lyme Regis", "Lymington", "Lytham St Annes", "Mablethorpe", "Macclesfield", "Maesteg",
	"Maghull", "Maidenhead", "Maidstone", "Maldon", "Malton", "Malvern", "Mansfield",
	"March", "Margate", "Market Harborough", "Marlborough", "Marlow", "Maryport", "Matlock",
	"Melton Mowbray", "Merthyr Tydfil", "Mexborough", "Middleton", "Middlewich", "Midhurst",
	"Midsomer Norton", "Millom", "Milngavie", "Minehead", "Mirfield", "Mitcham", "Mold",
	"Monmouth", "Montrose", "Morecambe", "Morley", "Morpeth", "Mossley", "Motherwell",
	"Mountain Ash", "Nantwich", "Neath", "Nelson", "Neston", "Newark-on-Trent", "Newbury",
	"Newcastle-under-Lyme", "Newhaven", "Newmarket", "Newport", "Newport Pagnell", "Newquay",
	"Newton Abbot", "Newton Aycliffe", "Newton Mearns", "Newtownabbey", "Newtownards", "Normanton",
	"North Berwick", "North Shields", "North Walsham", "Northallerton", "Northampton", "Northfleet",
	"Northwich", "Norwich", "Nuneaton", "Oadby", "Oakham", "Oban", "Okehampton",
	"Oldbury", "Oldham", "Omagh", "Ormskirk", "Orpington", "Ossett", "Oswestry",
	"Otley", "Oundle", "Oxford", "Oxted", "Paignton", "Paisley", "Peacehaven",
	"Peebles", "Penarth", "Penicuik", "Penistone", "Penrith", "Penryn", "Penzance",
	"Pershore", "Perth", "Peterborough", "Peterhead", "Peterlee", "Petersfield", "Pickering",
	"Pinner", "Pitlochry", "Plymouth", "Pocklington", "Pontefract", "Pontypridd", "Poole",
	"Port Glasgow", "Port Talbot", "Portadown", "Porthcawl", "Portishead", "Portlethen",
	"Portrush", "Portslade", "Portstewart", "Potters Bar", "Poulton-le-Fylde", "Prescot",
	"Prestatyn", "Prestwick", "Prudhoe", "Pudsey", "Pwllheli", "Queenborough", "Queensferry",
	"Ramsgate", "Ramsbottom", "Raunds", "Rawtenstall", "Rayleigh", "Reading", "Redcar",
	"Redditch", "Redhill", "Redruth", "Reigate", "Renfrew", "Retford", "Rhondda",
	"Rhyl", "Richmond", "Rickmansworth", "Ringwood", "Ripley", "Ripon", "Risca",
	"Rochdale", "Rochester", "Rochford", "Romford", "Romsey", "Ross-on-Wye", "Rotherham",
	"Rothesay", "Rottingdean", "Rowley Regis", "Royal Tunbridge Wells", "Royston", "Royton",
	"Rugby", "Rugeley", "Runcorn", "Rushden", "Rustington", "Rutherglen", "Ruthin",
	"Ryde", "Rye", "Ryton", "Saffron Walden", "St Andrews", "St Austell", "St Helens",
	"St Ives", "St Neots", "Sale", "Salford", "Saltash", "Saltburn-by-the-Sea", "Saltcoats",
	"Sandbach", "Sandown", "Sandwich", "Sandy", "Sawbridgeworth", "Scarborough", "Scunthorpe",
	"Seaford", "Seaham", "Seaton", "Sedgefield", "Selby", "Selkirk", "Settle",
	"Sevenoaks", "Shaftesbury", "Shanklin", "Sheerness", "Sheffield", "Shepshed", "Shepton Mallet",
	"Sherborne", "Sheringham", "Shildon", "Shipley", "Shoreham-by-Sea", "Shrewsbury", "Sidcup",
	"Sidmouth", "Sittingbourne", "Skegness", "Skelmersdale", "Skipton", "Sleaford", "Slough",
	"Smethwick", "Snodland", "Soham", "Solihull", "Somerton", "South Shields", "Southall",
	"Southam", "Southampton", "Southend-on-Sea", "Southport", "Southsea", "Southwell", "Southwick",
	"Southwold", "Sowerby Bridge", "Spalding", "Spennymoor", "Stafford", "Staines-upon-Thames",
	"Stalybridge", "Stamford", "Stanford-le-Hope", "Stanley", "Stansted Mountfitchet", "Staveley",
	"Stevenage", "Stevenston", "Stewarton", "Stirling", "Stockport", "Stocksbridge",
	"Stockton-on-Tees", "Stoke-on-Trent", "Stone", "Stonehaven", "Stonehouse", "Stourbridge",
	"Stourport-on-Severn", "Stowmarket", "Stranraer", "Stratford-upon-Avon", "Strathaven",
	"Street", "Strood", "Stroud", "Sudbury", "Sunderland", "Surbiton", "Sutton",
	"Sutton Coldfield", "Sutton in Ashfield", "Swadlincote", "Swaffham", "Swanage", "Swanley",
	"Swansea", "Swindon", "Swinton", "Tadcaster", "Tain", "Tamworth", "Taunton",
	"Tavistock", "Teignmouth", "Telford", "Tenby", "Tenterden", "Tewkesbury", "Thame",
	"Thatcham", "Thetford", "Thirsk", "Thornaby", "Thornbury", "Thorne", "Tiverton",
	"Todmorden", "Tonbridge", "Torpoint", "Torquay", "Totnes", "Tottenham", "Totton",
	"Towcester", "Tredegar", "Tring", "Troon", "Trowbridge", "Truro", "Twickenham",
	"Tyldesley", "Tynemouth", "Uckfield", "Ulverston", "Upminster", "Urmston", "Uttoxeter",
	"Uxbridge", "Ventnor", "Wadebridge", "Wakefield", "Wallasey", "Wallingford", "Wallsend",
	"Walsall", "Waltham Abbey", "Waltham Cross", "Walthamstow", "Walton-on-Thames", "Wantage",
	"Ware", "Wareham", "Warminster", "Warrington", "Warwick", "Washington", "Waterlooville",
	"Watford", "Wath-upon-Dearne", "Wednesbury", "Wednesfield", "Wellingborough", "Wellington",
	"Wells-next-the-Sea", "Welshpool", "Welwyn Garden City", "Wem", "Wembley", "West Bridgford",
	"West Bromwich", "Westcliff-on-Sea", "Westhoughton", "Weston-super-Mare", "Wetherby",
	"Weybridge", "Weymouth", "Whitby", "Whitchurch", "Whitehaven", "Whitley Bay", "Whitstable",
	"Whittlesey", "Whitworth", "Wick", "Wickford", "Widnes", "Wigan", "Wigston",
	"Willenhall", "Wilmslow", "Wimborne Minster", "Wincanton", "Winchester", "Windermere",
	"Windsor", "Winsford", "Wisbech", "Witham", "Withernsea", "Witney", "Wiveliscombe",
	"Woking", "Wokingham", "Wolverhampton", "Wombwell", "Woodbridge", "Worcester", "Workington",
	"Worksop", "Worthing", "Wotton-under-Edge", "Wrexham", "Wymondham", "Yarm", "Yate",
	"Yateley", "Yeovil",
}

// FilterCities returns cities containing term (case-insensitive), capped
// at limit. List order is preserved.
func FilterCities(term string, limit int) []string {
	return filter(Cities, term, limit)
}

// FilterTowns returns towns containing term (case-insensitive), capped
// at limit.
func FilterTowns(term string, limit int) []string {
	return filter(Towns, term, limit)
}

// Head returns the first limit entries of names, for the empty-query
// browse default.
func Head(names []string, limit int) []string {
	if limit < 0 {
		limit = 0
	}
	if limit > len(names) {
		limit = len(names)
	}
	out := make([]string, limit)
	copy(out, names[:limit])
	return out
}

func filter(names []string, term string, limit int) []string {
	needle := strings.ToLower(strings.TrimSpace(term))
	matches := []string{}
	for _, name := range names {
		if len(matches) >= limit {
			break
		}
		if strings.Contains(strings.ToLower(name), needle) {
			matches = append(matches, name)
		}
	}
	return matches
}
