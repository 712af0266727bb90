package chrono

// Zone tests must not depend on the host zoneinfo database.
import _ "time/tzdata"
