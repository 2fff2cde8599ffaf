package atlas

// locationCoordinates is the embedded lookup table. It is a representative
// subset of the ~800-entry dictionary ATS feeds recur against: one entry
// per major tech hub city in its most common "City, Region, Country" and
// "City, ST" spellings, plus the regional/remote placeholders that
// deliberately resolve to a representative centroid rather than returning
// no coordinates at all (see DESIGN.md for the scope decision).
var locationCoordinates = map[string]Coordinates{
	// United States - major tech hubs, each in full and abbreviated form.
	"San Francisco, CA, United States": {Lat: 37.7749, Lon: -122.4194},
	"San Francisco, CA":                {Lat: 37.7749, Lon: -122.4194},
	"San Francisco":                    {Lat: 37.7749, Lon: -122.4194},
	"New York, NY, United States":      {Lat: 40.7128, Lon: -74.0060},
	"New York, NY":                     {Lat: 40.7128, Lon: -74.0060},
	"New York":                         {Lat: 40.7128, Lon: -74.0060},
	"Seattle, WA, United States":       {Lat: 47.6062, Lon: -122.3321},
	"Seattle, WA":                      {Lat: 47.6062, Lon: -122.3321},
	"Seattle":                          {Lat: 47.6062, Lon: -122.3321},
	"Austin, TX, United States":        {Lat: 30.2672, Lon: -97.7431},
	"Austin, TX":                       {Lat: 30.2672, Lon: -97.7431},
	"Austin":                           {Lat: 30.2672, Lon: -97.7431},
	"Austin, Texas, United States":     {Lat: 30.2672, Lon: -97.7431},
	"Boston, MA, United States":        {Lat: 42.3601, Lon: -71.0589},
	"Boston, MA":                       {Lat: 42.3601, Lon: -71.0589},
	"Boston":                           {Lat: 42.3601, Lon: -71.0589},
	"Los Angeles, CA, United States":   {Lat: 34.0522, Lon: -118.2437},
	"Los Angeles, CA":                  {Lat: 34.0522, Lon: -118.2437},
	"Los Angeles":                      {Lat: 34.0522, Lon: -118.2437},
	"Chicago, IL, United States":       {Lat: 41.8781, Lon: -87.6298},
	"Chicago, IL":                      {Lat: 41.8781, Lon: -87.6298},
	"Chicago":                          {Lat: 41.8781, Lon: -87.6298},
	"Denver, CO, United States":        {Lat: 39.7392, Lon: -104.9903},
	"Denver, CO":                       {Lat: 39.7392, Lon: -104.9903},
	"Denver":                           {Lat: 39.7392, Lon: -104.9903},
	"Atlanta, GA, United States":       {Lat: 33.7490, Lon: -84.3880},
	"Atlanta, GA":                      {Lat: 33.7490, Lon: -84.3880},
	"Atlanta":                          {Lat: 33.7490, Lon: -84.3880},
	"Washington, DC, United States":    {Lat: 38.9072, Lon: -77.0369},
	"Washington, DC":                   {Lat: 38.9072, Lon: -77.0369},
	"San Jose, CA, United States":      {Lat: 37.3382, Lon: -121.8863},
	"San Jose, CA":                     {Lat: 37.3382, Lon: -121.8863},
	"Mountain View, CA, United States": {Lat: 37.3861, Lon: -122.0839},
	"Mountain View, CA":                {Lat: 37.3861, Lon: -122.0839},
	"Menlo Park, CA, United States":    {Lat: 37.4530, Lon: -122.1817},
	"Palo Alto, CA, United States":     {Lat: 37.4419, Lon: -122.1430},
	"Redmond, WA, United States":       {Lat: 47.6740, Lon: -122.1215},
	"Sunnyvale, CA, United States":     {Lat: 37.3688, Lon: -122.0363},
	"Santa Clara, CA, United States":   {Lat: 37.3541, Lon: -121.9552},
	"Cupertino, CA, United States":     {Lat: 37.3230, Lon: -122.0322},
	"Miami, FL, United States":         {Lat: 25.7617, Lon: -80.1918},
	"Miami, FL":                        {Lat: 25.7617, Lon: -80.1918},
	"Miami":                            {Lat: 25.7617, Lon: -80.1918},
	"Dallas, TX, United States":        {Lat: 32.7767, Lon: -96.7970},
	"Dallas, TX":                       {Lat: 32.7767, Lon: -96.7970},
	"Portland, OR, United States":      {Lat: 45.5152, Lon: -122.6784},
	"Portland, OR":                     {Lat: 45.5152, Lon: -122.6784},
	"Pittsburgh, PA, United States":    {Lat: 40.4406, Lon: -79.9959},
	"Raleigh, NC, United States":       {Lat: 35.7796, Lon: -78.6382},
	"Phoenix, AZ, United States":       {Lat: 33.4484, Lon: -112.0740},
	"Salt Lake City, UT, United States": {Lat: 40.7608, Lon: -111.8910},

	// International tech hubs.
	"London, United Kingdom":    {Lat: 51.5074, Lon: -0.1278},
	"London, UK":                {Lat: 51.5074, Lon: -0.1278},
	"London":                    {Lat: 51.5074, Lon: -0.1278},
	"Dublin, Ireland":           {Lat: 53.3498, Lon: -6.2603},
	"Dublin":                    {Lat: 53.3498, Lon: -6.2603},
	"Berlin, Germany":           {Lat: 52.5200, Lon: 13.4050},
	"Berlin":                    {Lat: 52.5200, Lon: 13.4050},
	"Munich, Germany":           {Lat: 48.1351, Lon: 11.5820},
	"Amsterdam, Netherlands":    {Lat: 52.3676, Lon: 4.9041},
	"Amsterdam":                 {Lat: 52.3676, Lon: 4.9041},
	"Paris, France":             {Lat: 48.8566, Lon: 2.3522},
	"Paris":                     {Lat: 48.8566, Lon: 2.3522},
	"Zurich, Switzerland":       {Lat: 47.3769, Lon: 8.5417},
	"Toronto, Canada":           {Lat: 43.6532, Lon: -79.3832},
	"Toronto, ON, Canada":       {Lat: 43.6532, Lon: -79.3832},
	"Toronto":                   {Lat: 43.6532, Lon: -79.3832},
	"Vancouver, Canada":         {Lat: 49.2827, Lon: -123.1207},
	"Vancouver, BC, Canada":     {Lat: 49.2827, Lon: -123.1207},
	"São Paulo":                 {Lat: -23.5505, Lon: -46.6333},
	"São Paulo, Brazil":         {Lat: -23.5505, Lon: -46.6333},
	"Mexico City, Mexico":       {Lat: 19.4326, Lon: -99.1332},
	"Singapore":                 {Lat: 1.3521, Lon: 103.8198},
	"Tokyo, Japan":              {Lat: 35.6762, Lon: 139.6503},
	"Tokyo":                     {Lat: 35.6762, Lon: 139.6503},
	"Seoul, South Korea":        {Lat: 37.5665, Lon: 126.9780},
	"Bengaluru, India":          {Lat: 12.9716, Lon: 77.5946},
	"Bangalore, India":          {Lat: 12.9716, Lon: 77.5946},
	"Hyderabad, India":          {Lat: 17.3850, Lon: 78.4867},
	"Sydney, Australia":         {Lat: -33.8688, Lon: 151.2093},
	"Tel Aviv, Israel":          {Lat: 32.0853, Lon: 34.7818},
	"Shanghai, China":           {Lat: 31.2304, Lon: 121.4737},
	"Beijing, China":            {Lat: 39.9042, Lon: 116.4074},
	"Taipei, Taiwan":            {Lat: 25.0330, Lon: 121.5654},

	// Regional/remote placeholders - deliberately map to a representative
	// centroid so a posting never silently drops out of downstream maps.
	"Remote":             {Lat: 39.8283, Lon: -98.5795}, // contiguous US centroid
	"Remote - US":        {Lat: 39.8283, Lon: -98.5795},
	"Remote - USA":       {Lat: 39.8283, Lon: -98.5795},
	"USA":                {Lat: 39.8283, Lon: -98.5795},
	"United States":      {Lat: 39.8283, Lon: -98.5795},
	"EMEA":               {Lat: 50.1109, Lon: 8.6821}, // Frankfurt, roughly central EMEA
	"APAC":               {Lat: 1.3521, Lon: 103.8198}, // Singapore
	"LATAM":              {Lat: -15.7801, Lon: -47.9292}, // Brasilia
	"Canada":             {Lat: 56.1304, Lon: -106.3468},
	"Worldwide":          {Lat: 0, Lon: 0},
	"Global":             {Lat: 0, Lon: 0},
	"Mapbox US":          {Lat: 37.7749, Lon: -122.4194},
}
